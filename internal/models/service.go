package models

/**
 * Service identity (domain/name[/version])
 * @property {string} domain - Service domain
 * @property {string} name - Service name
 * @property {string} version - Service version, optional except when adding deployments
 */
type ServiceConfig struct {
	Domain  string `json:"domain" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Version string `json:"version,omitempty"`
}

// Role is a named slot of a service bound to one component URN.
type Role struct {
	Name      string `json:"name"`
	Component string `json:"component"`
}

type Channel struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Protocol string `json:"protocol"`
}
