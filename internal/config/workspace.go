package config

import (
	"encoding/json"
	"fmt"
	"os"

	"eslap-workspace/internal/models"

	"github.com/tidwall/jsonc"
)

/**
 * Workspace settings file (workspace.json)
 * @property {map[string]StampConfig} stamps - Registered stamps keyed by name
 * @description
 * - Maintained outside this tool, only read here
 * - Comments and trailing commas are accepted
 */
type WorkspaceSettings struct {
	Stamps map[string]models.StampConfig `json:"stamps"`
}

/**
 * Read workspace settings from disk
 * @param {string} path - Path of workspace.json
 * @returns {*WorkspaceSettings} Parsed settings
 * @returns {error} os.ErrNotExist when the file is missing, decoding errors otherwise
 * @description
 * - Reads the file on every call, nothing is cached
 */
func ReadWorkspaceSettings(path string) (*WorkspaceSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var settings WorkspaceSettings
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("failed to decode workspace settings '%s': %w", path, err)
	}
	return &settings, nil
}
