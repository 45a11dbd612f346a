package stamp

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"eslap-workspace/internal/config"
	"eslap-workspace/internal/models"
)

// Registry resolves stamp names against the workspace settings file.
// The file is read on every lookup so edits apply immediately.
type Registry struct {
	path string
}

func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

func (r *Registry) Path() string {
	return r.path
}

/**
 * Resolve a stamp by name
 * @param {string} name - Stamp name as registered in workspace.json
 * @returns {models.StampConfig} Admission URL and token of the stamp
 * @throws
 * - ErrStampNotRegistered when the stamp, or the whole settings file, is absent
 * - Decoding errors of the settings file
 */
func (r *Registry) Resolve(name string) (models.StampConfig, error) {
	settings, err := r.read()
	if err != nil {
		return models.StampConfig{}, err
	}
	stamp, ok := settings.Stamps[name]
	if !ok {
		return models.StampConfig{}, fmt.Errorf("%w: %s", models.ErrStampNotRegistered, name)
	}
	return stamp, nil
}

// List returns the registered stamps sorted by name.
func (r *Registry) List() ([]models.StampInfo, error) {
	settings, err := r.read()
	if err != nil {
		if errors.Is(err, models.ErrStampNotRegistered) {
			return []models.StampInfo{}, nil
		}
		return nil, err
	}
	stamps := make([]models.StampInfo, 0, len(settings.Stamps))
	for name, s := range settings.Stamps {
		stamps = append(stamps, models.StampInfo{
			Name:      name,
			Admission: s.Admission,
			HasToken:  s.Token != "",
		})
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Name < stamps[j].Name })
	return stamps, nil
}

func (r *Registry) read() (*config.WorkspaceSettings, error) {
	settings, err := config.ReadWorkspaceSettings(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no workspace settings at %s", models.ErrStampNotRegistered, r.path)
		}
		return nil, err
	}
	return settings, nil
}
