package models

/**
 * Component identity (domain/name[/version])
 * @property {string} domain - Component domain
 * @property {string} name - Component name
 * @property {string} version - Component version, optional
 */
type ComponentConfig struct {
	Domain  string `json:"domain"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}
