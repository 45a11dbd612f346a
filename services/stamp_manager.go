package services

import (
	"context"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/models"
)

// StampManager exposes the stamps registered in the workspace settings.
type StampManager struct {
	w *Workspace
}

// List returns the registered stamps; tokens are never included.
func (m *StampManager) List() ([]models.StampInfo, error) {
	return m.w.registry.List()
}

// Info asks the admission service of a stamp for the deployments it runs.
func (m *StampManager) Info(ctx context.Context, stampName string) (map[string]models.DeploymentInstanceInfo, error) {
	sc, err := m.w.resolveStamp(stampName)
	if err != nil {
		return nil, err
	}
	deployments, err := m.w.bridge.FindDeployments(ctx, sc)
	observeAdmission("findDeployments", err)
	if err != nil {
		logger.Errorf("Failed to query stamp '%s': %v", stampName, err)
		return nil, err
	}
	return deployments, nil
}
