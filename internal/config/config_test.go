package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log:\n  level: debug\n"), 0644))

	cfg, err := LoadConfig(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Workspace.Path)
	assert.Equal(t, "workspace.json", cfg.Workspace.ConfigFile)
	assert.Equal(t, EngineBuiltin, cfg.Template.Engine)
	assert.Equal(t, 30*time.Second, cfg.Admission.Timeout)
	assert.Equal(t, filepath.Join(".", "templates"), cfg.TemplatesDir())
}

func TestLoadConfigValues(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	content := `
workspace:
  path: /srv/ws
  config_file: stamps.json
template:
  engine: command
  command: gen
admission:
  timeout: 5s
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	cfg, err := LoadConfig(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ws", cfg.Workspace.Path)
	assert.Equal(t, filepath.Join("/srv/ws", "stamps.json"), cfg.WorkspaceFile())
	assert.Equal(t, EngineCommand, cfg.Template.Engine)
	assert.Equal(t, "gen", cfg.Template.Command)
	assert.Equal(t, 5*time.Second, cfg.Admission.Timeout)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadWorkspaceSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	content := `{
  // stamps known by this workspace
  "stamps": {
    "prod": {"admission": "https://stamp.example/api", "token": "t"},
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := ReadWorkspaceSettings(path)
	require.NoError(t, err)
	require.Contains(t, settings.Stamps, "prod")
	assert.Equal(t, "https://stamp.example/api", settings.Stamps["prod"].Admission)
	assert.Equal(t, "t", settings.Stamps["prod"].Token)
}

func TestReadWorkspaceSettingsMissing(t *testing.T) {
	_, err := ReadWorkspaceSettings(filepath.Join(t.TempDir(), "workspace.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
