package root

import (
	"os"
	"path/filepath"
	"testing"

	"eslap-workspace/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("workspace:\n  path: /from/config\nlog:\n  level: error\n"), 0644))

	configFile, workspacePath, logLevel = file, "", ""
	t.Cleanup(func() { configFile, workspacePath, logLevel = "", "", "" })

	require.NoError(t, initApp(RootCmd, nil))
	assert.Equal(t, "/from/config", config.App().Workspace.Path)
	assert.Equal(t, "error", config.App().Log.Level)

	workspacePath, logLevel = dir, "debug"
	require.NoError(t, initApp(RootCmd, nil))
	assert.Equal(t, dir, config.App().Workspace.Path)
	assert.Equal(t, "debug", config.App().Log.Level)
	assert.Equal(t, filepath.Join(dir, "workspace.json"), config.App().WorkspaceFile())

	ws, err := OpenWorkspace()
	require.NoError(t, err)
	assert.Equal(t, dir, ws.Root())
}

func TestInitAppMissingConfigFile(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { configFile = "" })
	assert.Error(t, initApp(RootCmd, nil))
}
