package env

import (
	"os"
	"path/filepath"
)

// (default: %USERPROFILE%/.eslap on Windows, $HOME/.eslap on Linux)
var EslapDir string = GetEslapDir()

/**
 * Get eslap user directory path
 * @returns {string} Returns eslap directory path, holding the user level config.yaml
 */
func GetEslapDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".eslap")
}

// Build information, set with -ldflags "-X eslap-workspace/internal/env.Version=..."
var (
	Version       = "dev"
	BuildTime     = ""
	BuildCommitId = ""
)
