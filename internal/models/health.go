package models

// HealthResponse is returned by the /healthz probe of the workspace API server.
type HealthResponse struct {
	Version   string  `json:"version"`
	StartTime string  `json:"startTime"`
	Status    string  `json:"status"`
	Uptime    string  `json:"uptime"`
	Workspace string  `json:"workspace"`
	Metrics   Metrics `json:"metrics"`
}

type Metrics struct {
	TotalRequests int64 `json:"totalRequests"`
	ErrorRequests int64 `json:"errorRequests"`
	Stamps        int   `json:"stamps"`
}
