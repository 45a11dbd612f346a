package models

/**
 * Registered stamp (workspace.json "stamps" entry)
 * @property {string} admission - Base URL of the stamp admission service
 * @property {string} token - Bearer token used to authenticate against admission
 */
type StampConfig struct {
	Admission string `json:"admission"`
	Token     string `json:"token"`
}

// StampInfo is a registered stamp as listed to users. The token is never exposed.
type StampInfo struct {
	Name      string `json:"name"`
	Admission string `json:"admission"`
	HasToken  bool   `json:"hasToken"`
}

// ScalingDeploymentModification changes the number of instances of deployment roles.
type ScalingDeploymentModification struct {
	DeploymentURN string         `json:"deploymentURN"`
	Scaling       map[string]int `json:"scaling"`
}

type InstanceInfo struct {
	ID        string `json:"id"`
	Component string `json:"component,omitempty"`
	Connected bool   `json:"connected"`
}

type RoleInstanceInfo struct {
	Instances map[string]InstanceInfo `json:"instances,omitempty"`
}

/**
 * Deployment as reported by an admission service
 * @property {string} urn - Deployment URN
 * @property {string} service - URN of the deployed service
 * @property {map[string]RoleInstanceInfo} roles - Instances per role
 */
type DeploymentInstanceInfo struct {
	URN     string                      `json:"urn"`
	Service string                      `json:"service,omitempty"`
	Roles   map[string]RoleInstanceInfo `json:"roles,omitempty"`
}

// RegistrationResult is returned by admission when bundles are registered.
type RegistrationResult struct {
	Successful  []string                          `json:"successful,omitempty"`
	Errors      []string                          `json:"errors,omitempty"`
	Deployments map[string]DeploymentInstanceInfo `json:"deployments,omitempty"`
}
