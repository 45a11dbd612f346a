package services

import (
	"context"
	"fmt"
	"path/filepath"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"
)

// DeploymentManager authors deployments and forwards their lifecycle to stamps.
type DeploymentManager struct {
	w *Workspace
}

func deploymentDir(name string) string {
	return filepath.Join(manifest.KindDeployments, name)
}

func deploymentManifest(name string) string {
	return filepath.Join(deploymentDir(name), models.ManifestFileName)
}

/**
 * Generate a deployment of a service from a template
 * @param {string} template - Generator template
 * @param {models.DeploymentConfig} cfg - Deployment name and service identity
 * @returns {string} Confirmation naming the generated directory
 * @description
 * - The service version is mandatory, nothing is read or generated without it
 * - Roles, parameters and resources of the service are resolved and handed to the generator
 *   as a models.TemplateConfig, output goes to deployments/<name>
 * @throws
 * - ErrMissingServiceVersion, ErrInvalidName, ErrManifestNotFound, ErrMalformedManifest, ErrGeneratorFailed
 */
func (m *DeploymentManager) Add(ctx context.Context, template string, cfg models.DeploymentConfig) (string, error) {
	if cfg.Service.Version == "" {
		return "", fmt.Errorf("%w: deployment '%s'", models.ErrMissingServiceVersion, cfg.Name)
	}
	if err := checkName("deployment", cfg.Name); err != nil {
		return "", err
	}

	roles, err := m.w.Services.GetRoles(cfg.Service)
	if err != nil {
		return "", err
	}
	params, err := m.w.resolver.ResolveParameters(cfg.Service)
	if err != nil {
		return "", err
	}
	resources, err := m.w.resolver.ResolveResources(cfg.Service)
	if err != nil {
		return "", err
	}

	tc := &models.TemplateConfig{
		Name:           cfg.Name,
		Parameters:     params,
		Resources:      resources,
		Roles:          roles,
		ServiceName:    cfg.Service.Name,
		ServiceDomain:  cfg.Service.Domain,
		ServiceVersion: cfg.Service.Version,
	}
	dir := deploymentDir(cfg.Name)
	if err := m.w.render(ctx, manifest.KindDeployments, template, dir, tc); err != nil {
		return "", err
	}
	logger.Infof("Deployment '%s' generated from template '%s'", cfg.Name, template)
	return fmt.Sprintf("Deployment \"%s\" added in %s", cfg.Name, m.w.path(dir)), nil
}

// GetManifest returns the deployment manifest as a generic JSON document.
func (m *DeploymentManager) GetManifest(name string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := m.w.store.ReadJSON(deploymentManifest(name), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateManifest overwrites the deployment manifest. Concurrent writers are not coordinated.
func (m *DeploymentManager) UpdateManifest(name string, doc interface{}) error {
	if err := m.w.store.WriteJSON(deploymentManifest(name), doc); err != nil {
		logger.Errorf("Failed to update manifest of deployment '%s': %v", name, err)
		return err
	}
	logger.Infof("Manifest of deployment '%s' updated", name)
	return nil
}

/**
 * Identify the service a deployment was generated from
 * @param {string} name - Deployment name
 * @returns {models.ServiceConfig} Identity parsed from the manifest "servicename" URN
 */
func (m *DeploymentManager) GetService(name string) (models.ServiceConfig, error) {
	doc, err := m.GetManifest(name)
	if err != nil {
		return models.ServiceConfig{}, err
	}
	urn, _ := doc["servicename"].(string)
	if urn == "" {
		return models.ServiceConfig{}, &models.MalformedManifestError{Path: deploymentManifest(name), Field: "servicename"}
	}
	return m.w.Services.ParseName(urn), nil
}

// GetDistributableFile returns the path of the file registered when the deployment is deployed.
func (m *DeploymentManager) GetDistributableFile(name string) (string, error) {
	path := deploymentManifest(name)
	if !m.w.store.Exists(path) {
		return "", fmt.Errorf("%w: %s", models.ErrManifestNotFound, m.w.path(path))
	}
	return m.w.path(path), nil
}

/**
 * Change the number of instances of a deployment role
 * @param {string} name - Deployment name, sent as the deployment URN
 * @param {string} role - Role to scale
 * @param {int} numInstances - New number of instances
 * @param {string} stampName - Stamp registered in the workspace settings
 * @returns {string} "Result: <remote result>"
 */
func (m *DeploymentManager) ScaleRole(ctx context.Context, name string, role string, numInstances int, stampName string) (string, error) {
	sc, err := m.w.resolveStamp(stampName)
	if err != nil {
		return "", err
	}
	result, err := m.w.bridge.ScaleRole(ctx, name, role, numInstances, sc)
	observeAdmission("modifyDeployment", err)
	if err != nil {
		logger.Errorf("Failed to scale role '%s' of '%s' on stamp '%s': %v", role, name, stampName, err)
		return "", err
	}
	logger.Infof("Role '%s' of '%s' scaled to %d on stamp '%s'", role, name, numInstances, stampName)
	return result, nil
}

// Undeploy removes a deployment from a stamp and returns the instances reported by admission.
func (m *DeploymentManager) Undeploy(ctx context.Context, name string, stampName string) ([]models.DeploymentInstanceInfo, error) {
	sc, err := m.w.resolveStamp(stampName)
	if err != nil {
		return nil, err
	}
	instances, err := m.w.bridge.Undeploy(ctx, name, sc)
	observeAdmission("undeploy", err)
	if err != nil {
		logger.Errorf("Failed to undeploy '%s' from stamp '%s': %v", name, stampName, err)
		return nil, err
	}
	logger.Infof("Deployment '%s' undeployed from stamp '%s'", name, stampName)
	return instances, nil
}

// Deploy registers the deployment manifest on a stamp.
func (m *DeploymentManager) Deploy(ctx context.Context, name string, stampName string) (*models.RegistrationResult, error) {
	path := deploymentManifest(name)
	f, err := m.w.store.Filesystem().Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrManifestNotFound, path, err)
	}
	defer f.Close()

	sc, err := m.w.resolveStamp(stampName)
	if err != nil {
		return nil, err
	}
	result, err := m.w.bridge.Register(ctx, models.ManifestFileName, f, sc)
	observeAdmission("register", err)
	if err != nil {
		logger.Errorf("Failed to deploy '%s' on stamp '%s': %v", name, stampName, err)
		return nil, err
	}
	logger.Infof("Deployment '%s' registered on stamp '%s'", name, stampName)
	return result, nil
}
