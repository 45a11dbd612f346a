package services

import (
	"context"
	"fmt"
	"path/filepath"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"
)

// ServiceManager reads and authors service manifests.
type ServiceManager struct {
	w *Workspace
}

func serviceIdentity(cfg models.ServiceConfig) manifest.Identity {
	return manifest.Identity{Domain: cfg.Domain, Name: cfg.Name, Version: cfg.Version}
}

func (m *ServiceManager) document(cfg models.ServiceConfig) (*manifest.Document, error) {
	return m.w.store.Service(serviceIdentity(cfg))
}

// Add generates a service into services/<domain>/<name>, with the service identity as template data.
func (m *ServiceManager) Add(ctx context.Context, template string, cfg models.ServiceConfig) (string, error) {
	if err := checkName("domain", cfg.Domain); err != nil {
		return "", err
	}
	if err := checkName("name", cfg.Name); err != nil {
		return "", err
	}
	dir := filepath.Join(manifest.KindServices, cfg.Domain, cfg.Name)
	if err := m.w.render(ctx, manifest.KindServices, template, dir, cfg); err != nil {
		return "", err
	}
	logger.Infof("Service '%s/%s' generated from template '%s'", cfg.Domain, cfg.Name, template)
	return fmt.Sprintf("Service \"%s\" added in %s", cfg.Name, m.w.path(dir)), nil
}

func (m *ServiceManager) GetManifest(cfg models.ServiceConfig) (*models.Manifest, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return &doc.Manifest, nil
}

func (m *ServiceManager) GetRoles(cfg models.ServiceConfig) ([]models.Role, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.RoleList()
}

func (m *ServiceManager) GetProvidedChannels(cfg models.ServiceConfig) ([]models.Channel, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.ProvidedChannels(), nil
}

func (m *ServiceManager) GetRequiredChannels(cfg models.ServiceConfig) ([]models.Channel, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.RequiredChannels(), nil
}

func (m *ServiceManager) GetParameters(cfg models.ServiceConfig) ([]models.ParameterDescriptor, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.Parameters(), nil
}

func (m *ServiceManager) GetResources(cfg models.ServiceConfig) ([]models.ResourceDescriptor, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return nil, err
	}
	return doc.Resources(), nil
}

// GetComponents returns the component URNs bound to the service roles, in role order.
func (m *ServiceManager) GetComponents(cfg models.ServiceConfig) ([]string, error) {
	roles, err := m.GetRoles(cfg)
	if err != nil {
		return nil, err
	}
	components := make([]string, 0, len(roles))
	for _, r := range roles {
		components = append(components, r.Component)
	}
	return components, nil
}

func (m *ServiceManager) ParseName(urn string) models.ServiceConfig {
	id := manifest.ParseName(urn)
	return models.ServiceConfig{Domain: id.Domain, Name: id.Name, Version: id.Version}
}

func (m *ServiceManager) GenerateURN(name, domain, version string) string {
	return manifest.GenerateURN(manifest.KindServices, domain, name, version)
}

// GetCurrentVersion returns the version encoded in the URN of the service manifest.
func (m *ServiceManager) GetCurrentVersion(cfg models.ServiceConfig) (string, error) {
	doc, err := m.document(cfg)
	if err != nil {
		return "", err
	}
	id, err := doc.Identity()
	if err != nil {
		return "", err
	}
	return id.Version, nil
}

// CheckVersion tells whether the workspace holds the requested version of the service.
func (m *ServiceManager) CheckVersion(cfg models.ServiceConfig) (bool, error) {
	current, err := m.GetCurrentVersion(cfg)
	if err != nil {
		return false, err
	}
	return current == cfg.Version, nil
}

/**
 * Path of the file to register for a service version
 * @param {models.ServiceConfig} cfg - Service identity, version included
 * @returns {string} Manifest path when the workspace holds that version
 */
func (m *ServiceManager) GetDistributableFile(cfg models.ServiceConfig) (string, error) {
	ok, err := m.CheckVersion(cfg)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: version \"%s\" of service \"%s/%s\" not found in the workspace",
			models.ErrManifestNotFound, cfg.Version, cfg.Domain, cfg.Name)
	}
	path, err := m.w.store.Locate(manifest.KindServices, serviceIdentity(cfg))
	if err != nil {
		return "", err
	}
	return m.w.path(path), nil
}

// Versions lists the version directories of a service, oldest first.
func (m *ServiceManager) Versions(cfg models.ServiceConfig) ([]string, error) {
	return m.w.store.Versions(manifest.KindServices, cfg.Domain, cfg.Name)
}

// Configuration resolves the deployment parameters and resources of a service.
func (m *ServiceManager) Configuration(cfg models.ServiceConfig) (*models.ServiceConfiguration, error) {
	params, err := m.w.resolver.ResolveParameters(cfg)
	if err != nil {
		return nil, err
	}
	resources, err := m.w.resolver.ResolveResources(cfg)
	if err != nil {
		return nil, err
	}
	return &models.ServiceConfiguration{Parameters: params, Resources: resources}, nil
}
