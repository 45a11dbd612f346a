package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"eslap-workspace/internal/models"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	version "github.com/hashicorp/go-version"
)

// Store reads and writes manifests below a workspace root. Paths are relative to that root.
type Store struct {
	fs billy.Filesystem
}

// NewStore returns a store rooted at the workspace directory.
func NewStore(root string) *Store {
	return &Store{fs: osfs.New(root)}
}

// NewStoreFS returns a store over an arbitrary filesystem, e.g. memfs in tests.
func NewStoreFS(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

func (s *Store) Filesystem() billy.Filesystem {
	return s.fs
}

// Root returns the workspace root as seen by the underlying filesystem.
func (s *Store) Root() string {
	return s.fs.Root()
}

func (s *Store) Exists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

/**
 * Read a JSON document
 * @param {string} path - Workspace relative path
 * @param {any} v - Destination of the decoded document
 * @returns {error} ErrManifestNotFound when the file cannot be read, ErrMalformedManifest on invalid JSON
 */
func (s *Store) ReadJSON(path string, v any) error {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrManifestNotFound, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrMalformedManifest, path, err)
	}
	return nil
}

// WriteJSON stores v as indented JSON, creating parent directories as needed.
func (s *Store) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode '%s': %w", path, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", path, err)
	}
	return util.WriteFile(s.fs, path, data, 0644)
}

// LoadManifest decodes the component or service manifest at path.
func (s *Store) LoadManifest(path string) (*models.Manifest, error) {
	var m models.Manifest
	if err := s.ReadJSON(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

/**
 * Locate the manifest of a component or service
 * @param {string} kind - KindComponents or KindServices
 * @param {Identity} id - Element identity, version optional
 * @returns {string} Workspace relative path of Manifest.json
 * @description
 * - <kind>/<domain>/<name>/<version>/Manifest.json when the version directory exists
 * - otherwise <kind>/<domain>/<name>/Manifest.json
 * - without a version and without an unversioned manifest, the newest version directory wins
 * @throws
 * - ErrManifestNotFound when no candidate exists
 */
func (s *Store) Locate(kind string, id Identity) (string, error) {
	base := filepath.Join(kind, id.Domain, id.Name)
	if id.Version != "" {
		versioned := filepath.Join(base, id.Version, models.ManifestFileName)
		if s.Exists(versioned) {
			return versioned, nil
		}
	}
	flat := filepath.Join(base, models.ManifestFileName)
	if s.Exists(flat) {
		return flat, nil
	}
	if id.Version == "" {
		versions, err := s.Versions(kind, id.Domain, id.Name)
		if err == nil && len(versions) > 0 {
			return filepath.Join(base, versions[len(versions)-1], models.ManifestFileName), nil
		}
	}
	return "", fmt.Errorf("%w: %s", models.ErrManifestNotFound, flat)
}

/**
 * List version directories of an element holding a manifest
 * @returns {[]string} Versions sorted from oldest to newest
 * @description
 * - Directory names that are not valid versions are ignored
 */
func (s *Store) Versions(kind, domain, name string) ([]string, error) {
	base := filepath.Join(kind, domain, name)
	entries, err := s.fs.ReadDir(base)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrManifestNotFound, base)
		}
		return nil, err
	}
	var versions version.Collection
	for _, e := range entries {
		if !e.IsDir() || !s.Exists(filepath.Join(base, e.Name(), models.ManifestFileName)) {
			continue
		}
		v, err := version.NewVersion(e.Name())
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	sort.Sort(versions)
	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.Original()
	}
	return names, nil
}
