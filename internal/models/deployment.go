package models

// DeploymentConfig identifies a deployment to be generated from a service.
type DeploymentConfig struct {
	Name    string        `json:"name" binding:"required"`
	Service ServiceConfig `json:"service" binding:"required"`
}

/**
 * Resolved parameter or resource, ready for the manifest generator
 * @property {string} name - Parameter or resource name
 * @property {string} type - Declared type
 * @property {string} value - Literal value valid for the declared type
 */
type ResolvedConfigItem struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// TemplateConfig is the parameter set handed to the generator when a deployment is added.
type TemplateConfig struct {
	Name           string               `json:"name"`
	Parameters     []ResolvedConfigItem `json:"parameters"`
	Resources      []ResolvedConfigItem `json:"resources"`
	Roles          []Role               `json:"roles"`
	ServiceName    string               `json:"serviceName"`
	ServiceDomain  string               `json:"serviceDomain"`
	ServiceVersion string               `json:"serviceVersion"`
}

// ServiceConfiguration groups the resolved parameters and resources of a service.
type ServiceConfiguration struct {
	Parameters []ResolvedConfigItem `json:"parameters" yaml:"parameters"`
	Resources  []ResolvedConfigItem `json:"resources" yaml:"resources"`
}
