package resolver

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceManifest = `{
  "name": "eslap://acme/services/webapp/1.0.0",
  "roles": [
    {"name": "db", "component": "eslap://acme/components/database/1.0.0"},
    {"name": "web", "component": "eslap://acme/components/frontend/2.0.0"},
    {"name": "cache", "component": ""}
  ],
  "configuration": {
    "parameters": [
      {"name": "debug", "type": "BOOLEAN"},
      {"name": "secure", "type": "BOOLEAN", "default": "true"},
      {"name": "replicas", "type": "INTEGER"},
      {"name": "ratio", "type": "NUMBER"},
      {"name": "db", "type": "JSON", "default": {"ignored": true}},
      {"name": "cache", "type": "JSON", "default": {"size": 10}},
      {"name": "extra", "type": "JSON"},
      {"name": "hosts", "type": "LIST"},
      {"name": "title", "type": "STRING"},
      {"name": "domain", "type": "VHOST"},
      {"name": "future", "type": "HOLOGRAM"}
    ],
    "resources": [
      {"name": "client", "type": "CERT_CLIENT"},
      {"name": "server", "type": "CERT_SERVER"},
      {"name": "zones", "type": "FAULT_GROUP"},
      {"name": "site", "type": "VHOST"},
      {"name": "data", "type": "VOLUME_PERSISTENT"},
      {"name": "tmp", "type": "VOLUME_VOLATILE"}
    ]
  }
}`

const databaseManifest = `{
  "name": "eslap://acme/components/database/1.0.0",
  "configuration": {
    "parameters": [
      {"name": "user", "type": "STRING"},
      {"name": "port", "type": "INTEGER", "default": 5432},
      {"name": "tls", "type": "BOOLEAN"},
      {"name": "options", "type": "JSON"},
      {"name": "db", "type": "JSON"}
    ]
  }
}`

func newWorkspace(t *testing.T, files map[string]string) *Resolver {
	t.Helper()
	fs := memfs.New()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, util.WriteFile(fs, path, []byte(content), 0644))
	}
	return New(manifest.NewStoreFS(fs))
}

var webapp = models.ServiceConfig{Domain: "acme", Name: "webapp", Version: "1.0.0"}

func valueOf(t *testing.T, items []models.ResolvedConfigItem, name string) string {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item.Value
		}
	}
	t.Fatalf("item %s not found", name)
	return ""
}

func TestResolveParametersDefaults(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json":           serviceManifest,
		"components/acme/database/Manifest.json":       databaseManifest,
		"components/acme/frontend/2.0.0/Manifest.json": `{"name":"eslap://acme/components/frontend/2.0.0"}`,
	})

	items, err := r.ResolveParameters(webapp)
	require.NoError(t, err)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"debug", "secure", "replicas", "ratio", "db", "cache", "extra", "hosts", "title", "domain"}, names)

	assert.Equal(t, "false", valueOf(t, items, "debug"))
	assert.Equal(t, "true", valueOf(t, items, "secure"))
	assert.Equal(t, "0", valueOf(t, items, "replicas"))
	assert.Equal(t, "0", valueOf(t, items, "ratio"))
	assert.Equal(t, `{"size":10}`, valueOf(t, items, "cache"))
	assert.Equal(t, "{}", valueOf(t, items, "extra"))
	assert.Equal(t, "[]", valueOf(t, items, "hosts"))
	assert.Equal(t, `""`, valueOf(t, items, "title"))
	assert.Equal(t, `""`, valueOf(t, items, "domain"))
}

func TestResolveParametersRoleConfiguration(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json":     serviceManifest,
		"components/acme/database/Manifest.json": databaseManifest,
	})

	items, err := r.ResolveParameters(webapp)
	require.NoError(t, err)

	value := valueOf(t, items, "db")
	assert.Equal(t, `{"user":"","port":5432,"tls":false,"options":{},"db":{}}`, value)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(value), &decoded))
	assert.Len(t, decoded, 5)
	assert.NotContains(t, decoded, "ignored")
}

func TestResolveParametersEmptyComponent(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json":     serviceManifest,
		"components/acme/database/Manifest.json": `{"name":"eslap://acme/components/database/1.0.0"}`,
	})

	items, err := r.ResolveParameters(webapp)
	require.NoError(t, err)
	assert.Equal(t, "{}", valueOf(t, items, "db"))
}

func TestResolveParametersMissingComponent(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json": serviceManifest,
	})

	_, err := r.ResolveParameters(webapp)
	assert.ErrorIs(t, err, models.ErrManifestNotFound)
}

func TestResolveParametersMissingService(t *testing.T) {
	r := newWorkspace(t, nil)

	_, err := r.ResolveParameters(webapp)
	assert.ErrorIs(t, err, models.ErrManifestNotFound)

	_, err = r.ResolveResources(webapp)
	assert.ErrorIs(t, err, models.ErrManifestNotFound)
}

func TestResolveParametersWithoutRoles(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json": `{"name":"eslap://acme/services/webapp/1.0.0"}`,
	})

	_, err := r.ResolveParameters(webapp)
	require.ErrorIs(t, err, models.ErrMalformedManifest)
	var malformed *models.MalformedManifestError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "roles", malformed.Field)
}

func TestResolveResources(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json": serviceManifest,
	})

	items, err := r.ResolveResources(webapp)
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "client", items[0].Name)
	assert.Equal(t, "tmp", items[5].Name)
	for _, item := range items {
		assert.Equal(t, `""`, item.Value, item.Name)
	}
}

func TestResolveNoConfiguration(t *testing.T) {
	r := newWorkspace(t, map[string]string{
		"services/acme/webapp/Manifest.json": `{"name":"eslap://acme/services/webapp/1.0.0","roles":[]}`,
	})

	params, err := r.ResolveParameters(webapp)
	require.NoError(t, err)
	assert.Empty(t, params)

	resources, err := r.ResolveResources(webapp)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestDefaultValue(t *testing.T) {
	assert.Equal(t, "false", DefaultValue(models.ParameterDescriptor{Type: models.ParameterBoolean}))
	assert.Equal(t, "true", DefaultValue(models.ParameterDescriptor{Type: models.ParameterBoolean, Default: "true"}))
	assert.Equal(t, "42", DefaultValue(models.ParameterDescriptor{Type: models.ParameterNumber, Default: "42"}))
}

func TestObjectLiteralEncodesInvalidJSONAsString(t *testing.T) {
	value, err := objectLiteral([]models.ResolvedConfigItem{
		{Name: "name", Type: "STRING", Value: "plain text"},
		{Name: "count", Type: "INTEGER", Value: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"plain text","count":3}`, value)
}

func TestObjectLiteralKeepsHTMLCharacters(t *testing.T) {
	value, err := objectLiteral([]models.ResolvedConfigItem{
		{Name: "url", Type: "STRING", Value: "http://x/?a=1&b=<2>"},
		{Name: "opts", Type: "JSON", Value: `{"q":"a&b"}`},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"url":"http://x/?a=1&b=<2>","opts":{"q":"a&b"}}`, value)
}
