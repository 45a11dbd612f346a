package manifest

import (
	"path/filepath"
	"testing"

	"eslap-workspace/internal/models"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, s *Store, path, content string) {
	t.Helper()
	require.NoError(t, s.Filesystem().MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, util.WriteFile(s.Filesystem(), path, []byte(content), 0644))
}

func TestReadJSONNotFound(t *testing.T) {
	s := NewStoreFS(memfs.New())
	var v map[string]any
	err := s.ReadJSON("services/acme/web/Manifest.json", &v)
	assert.ErrorIs(t, err, models.ErrManifestNotFound)
}

func TestReadJSONMalformed(t *testing.T) {
	s := NewStoreFS(memfs.New())
	writeFile(t, s, "services/acme/web/Manifest.json", "{not json")
	var v map[string]any
	err := s.ReadJSON("services/acme/web/Manifest.json", &v)
	assert.ErrorIs(t, err, models.ErrMalformedManifest)
}

func TestWriteThenRead(t *testing.T) {
	s := NewStoreFS(memfs.New())
	doc := map[string]any{
		"servicename": "eslap://acme/services/web/1.0",
		"nested":      map[string]any{"list": []any{"a", float64(2)}},
	}
	require.NoError(t, s.WriteJSON("deployments/app1/Manifest.json", doc))

	var got map[string]any
	require.NoError(t, s.ReadJSON("deployments/app1/Manifest.json", &got))
	assert.Equal(t, doc, got)
}

func TestLoadManifestRolesPresence(t *testing.T) {
	s := NewStoreFS(memfs.New())
	writeFile(t, s, "a/Manifest.json", `{"name":"eslap://acme/services/a/1","roles":[]}`)
	writeFile(t, s, "b/Manifest.json", `{"name":"eslap://acme/services/b/1"}`)

	a, err := s.LoadManifest("a/Manifest.json")
	require.NoError(t, err)
	assert.NotNil(t, a.Roles)

	b, err := s.LoadManifest("b/Manifest.json")
	require.NoError(t, err)
	assert.Nil(t, b.Roles)
}

func TestLocate(t *testing.T) {
	s := NewStoreFS(memfs.New())
	writeFile(t, s, "components/acme/db/Manifest.json", `{}`)
	writeFile(t, s, "components/acme/cache/1.2.0/Manifest.json", `{}`)
	writeFile(t, s, "components/acme/cache/1.10.0/Manifest.json", `{}`)
	writeFile(t, s, "components/acme/cache/latest/Manifest.json", `{}`)

	path, err := s.Locate(KindComponents, Identity{Domain: "acme", Name: "db", Version: "3.0"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("components", "acme", "db", "Manifest.json"), path)

	path, err = s.Locate(KindComponents, Identity{Domain: "acme", Name: "cache", Version: "1.2.0"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("components", "acme", "cache", "1.2.0", "Manifest.json"), path)

	path, err = s.Locate(KindComponents, Identity{Domain: "acme", Name: "cache"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("components", "acme", "cache", "1.10.0", "Manifest.json"), path)

	_, err = s.Locate(KindComponents, Identity{Domain: "acme", Name: "missing"})
	assert.ErrorIs(t, err, models.ErrManifestNotFound)
}

func TestVersions(t *testing.T) {
	s := NewStoreFS(memfs.New())
	writeFile(t, s, "services/acme/web/2.0/Manifest.json", `{}`)
	writeFile(t, s, "services/acme/web/1.5/Manifest.json", `{}`)
	require.NoError(t, s.Filesystem().MkdirAll("services/acme/web/3.0", 0755))

	versions, err := s.Versions(KindServices, "acme", "web")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5", "2.0"}, versions)
}
