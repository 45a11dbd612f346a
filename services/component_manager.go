package services

import (
	"context"
	"fmt"
	"path/filepath"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"
)

// ComponentManager reads and authors component manifests.
type ComponentManager struct {
	w *Workspace
}

func (m *ComponentManager) document(cfg models.ComponentConfig) (*manifest.Document, error) {
	return m.w.store.Component(manifest.Identity{Domain: cfg.Domain, Name: cfg.Name, Version: cfg.Version})
}

// Add generates a component into components/<domain>/<name>.
func (m *ComponentManager) Add(ctx context.Context, template string, cfg models.ComponentConfig) (string, error) {
	if err := checkName("domain", cfg.Domain); err != nil {
		return "", err
	}
	if err := checkName("name", cfg.Name); err != nil {
		return "", err
	}
	dir := filepath.Join(manifest.KindComponents, cfg.Domain, cfg.Name)
	if err := m.w.render(ctx, manifest.KindComponents, template, dir, cfg); err != nil {
		return "", err
	}
	logger.Infof("Component '%s/%s' generated from template '%s'", cfg.Domain, cfg.Name, template)
	return fmt.Sprintf("Component \"%s\" added in %s", cfg.Name, m.w.path(dir)), nil
}

func (m *ComponentManager) GetManifest(cfg models.ComponentConfig) (*models.Manifest, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return &doc.Manifest, nil
}

func (m *ComponentManager) GetParameters(cfg models.ComponentConfig) ([]models.ParameterDescriptor, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.Parameters(), nil
}

func (m *ComponentManager) GetResources(cfg models.ComponentConfig) ([]models.ResourceDescriptor, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.Resources(), nil
}

func (m *ComponentManager) ParseName(urn string) models.ComponentConfig {
	id := manifest.ParseName(urn)
	return models.ComponentConfig{Domain: id.Domain, Name: id.Name, Version: id.Version}
}

func (m *ComponentManager) GenerateURN(name, domain, version string) string {
	return manifest.GenerateURN(manifest.KindComponents, domain, name, version)
}
