package models

import "encoding/json"

// ManifestFileName is the file holding a component, service or deployment manifest.
const ManifestFileName = "Manifest.json"

/**
 * Manifest document of a component or service (Manifest.json)
 * @property {string} name - URN of the element, e.g. eslap://acme/services/webapp/2.1
 * @property {[]Role} roles - Roles of a service, nil when the field is absent
 * @property {*Channels} channels - Provided and required channels
 * @property {*Configuration} configuration - Declared parameters and resources
 */
type Manifest struct {
	Name          string         `json:"name"`
	Roles         []Role         `json:"roles"`
	Channels      *Channels      `json:"channels,omitempty"`
	Configuration *Configuration `json:"configuration,omitempty"`
}

type Channels struct {
	Provides []Channel `json:"provides,omitempty"`
	Requires []Channel `json:"requires,omitempty"`
}

type Configuration struct {
	Parameters []RawParameter `json:"parameters,omitempty"`
	Resources  []RawResource  `json:"resources,omitempty"`
}

// RawParameter is a parameter declaration exactly as written in a manifest.
type RawParameter struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Default json.RawMessage `json:"default,omitempty"`
}

// RawResource is a resource declaration exactly as written in a manifest.
type RawResource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
