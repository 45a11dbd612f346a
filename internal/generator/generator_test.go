package generator

import (
	"context"
	"testing"

	"eslap-workspace/internal/config"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deploymentParams struct {
	Name        string
	ServiceName string
	Roles       []string
	Parameters  map[string]string
}

func TestBuiltinRender(t *testing.T) {
	templates := memfs.New()
	require.NoError(t, util.WriteFile(templates, "deployment/Manifest.json.tmpl",
		[]byte(`{"name":"{{.Name}}","servicename":"{{.ServiceName}}","roles":{{json .Roles}}}`), 0644))
	require.NoError(t, util.WriteFile(templates, "deployment/docs/README.md",
		[]byte("# {{.Name}}\n"), 0644))

	workspace := memfs.New()
	r := NewBuiltin(templates, workspace)
	err := r.Render(context.Background(), "deployment", "deployments/app1", deploymentParams{
		Name:        "app1",
		ServiceName: "eslap://acme.com/services/webapp/1_0_0",
		Roles:       []string{"web", "db"},
	})
	require.NoError(t, err)

	manifest, err := util.ReadFile(workspace, "deployments/app1/Manifest.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"app1","servicename":"eslap://acme.com/services/webapp/1_0_0","roles":["web","db"]}`, string(manifest))

	readme, err := util.ReadFile(workspace, "deployments/app1/docs/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# app1\n", string(readme))
}

func TestBuiltinRenderMissingTemplate(t *testing.T) {
	r := NewBuiltin(memfs.New(), memfs.New())
	err := r.Render(context.Background(), "nothing", "deployments/app1", nil)
	assert.Error(t, err)
}

func TestBuiltinRenderNotADirectory(t *testing.T) {
	templates := memfs.New()
	require.NoError(t, util.WriteFile(templates, "single", []byte("x"), 0644))
	r := NewBuiltin(templates, memfs.New())
	assert.Error(t, r.Render(context.Background(), "single", "out", nil))
}

func TestBuiltinRenderBadTemplateWritesNothing(t *testing.T) {
	templates := memfs.New()
	require.NoError(t, util.WriteFile(templates, "broken/A.json.tmpl", []byte(`{}`), 0644))
	require.NoError(t, util.WriteFile(templates, "broken/Manifest.json", []byte(`{{.Missing}}`), 0644))

	workspace := memfs.New()
	r := NewBuiltin(templates, workspace)
	err := r.Render(context.Background(), "broken", "deployments/app1", map[string]string{})
	require.Error(t, err)

	_, statErr := workspace.Stat("deployments/app1/Manifest.json")
	assert.Error(t, statErr)
	_, statErr = workspace.Stat("deployments/app1/A.json")
	assert.Error(t, statErr)
	_, statErr = workspace.Stat("deployments/app1")
	assert.Error(t, statErr)
}

func TestBuiltinRenderCancelled(t *testing.T) {
	templates := memfs.New()
	require.NoError(t, util.WriteFile(templates, "tpl/a.txt", []byte("a"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewBuiltin(templates, memfs.New())
	assert.ErrorIs(t, r.Render(ctx, "tpl", "out", nil), context.Canceled)
}

func TestNewSelectsEngine(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Workspace.Path = t.TempDir()

	r, err := New(cfg, memfs.New())
	require.NoError(t, err)
	assert.IsType(t, &builtinRenderer{}, r)

	cfg.Template.Engine = config.EngineCommand
	cfg.Template.Command = "yo"
	r, err = New(cfg, memfs.New())
	require.NoError(t, err)
	assert.IsType(t, &commandRenderer{}, r)

	cfg.Template.Engine = "jinja"
	_, err = New(cfg, memfs.New())
	assert.Error(t, err)
}
