package services

import (
	"time"

	"eslap-workspace/internal/env"
	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/models"
)

// Server is the state behind the workspace API: one workspace and the time it started serving it.
type Server struct {
	workspace *Workspace
	startTime time.Time
}

/**
 * Create new server instance over a workspace
 * @param {*Workspace} workspace - Workspace served by the API
 * @returns {Server} Returns new server instance
 */
func NewServer(workspace *Workspace) *Server {
	return &Server{
		workspace: workspace,
		startTime: time.Now(),
	}
}

func (s *Server) Workspace() *Workspace {
	return s.workspace
}

func (s *Server) Deployments() *DeploymentManager {
	return s.workspace.Deployments
}

func (s *Server) Services() *ServiceManager {
	return s.workspace.Services
}

func (s *Server) Stamps() *StampManager {
	return s.workspace.Stamps
}

/**
 * Build health check response
 * @returns {models.HealthResponse} Version, start time, uptime and request statistics
 * @description
 * - Status is "UP" unless the workspace settings file cannot be decoded
 */
func (s *Server) GetHealthz() models.HealthResponse {
	uptime := time.Since(s.startTime)

	status := "UP"
	stamps, err := s.workspace.Stamps.List()
	if err != nil {
		logger.Warnf("Workspace settings unreadable: %v", err)
		status = "DEGRADED"
	}

	return models.HealthResponse{
		Version:   env.Version,
		StartTime: s.startTime.Format(time.RFC3339),
		Status:    status,
		Uptime:    uptime.String(),
		Workspace: s.workspace.Root(),
		Metrics: models.Metrics{
			TotalRequests: GetTotalRequestCount(),
			ErrorRequests: GetTotalErrorCount(),
			Stamps:        len(stamps),
		},
	}
}
