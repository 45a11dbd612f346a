package models

type ParameterType string

const (
	ParameterBoolean ParameterType = "BOOLEAN"
	ParameterInteger ParameterType = "INTEGER"
	ParameterJSON    ParameterType = "JSON"
	ParameterList    ParameterType = "LIST"
	ParameterNumber  ParameterType = "NUMBER"
	ParameterString  ParameterType = "STRING"
	ParameterVhost   ParameterType = "VHOST"
)

var parameterTypes = map[ParameterType]bool{
	ParameterBoolean: true,
	ParameterInteger: true,
	ParameterJSON:    true,
	ParameterList:    true,
	ParameterNumber:  true,
	ParameterString:  true,
	ParameterVhost:   true,
}

// ParseParameterType maps a manifest type name to a known parameter type.
// Names are matched exactly, "boolean" is not BOOLEAN.
func ParseParameterType(s string) (ParameterType, bool) {
	t := ParameterType(s)
	return t, parameterTypes[t]
}

type ResourceType string

const (
	ResourceCertClient       ResourceType = "CERT_CLIENT"
	ResourceCertServer       ResourceType = "CERT_SERVER"
	ResourceFaultGroup       ResourceType = "FAULT_GROUP"
	ResourceVhost            ResourceType = "VHOST"
	ResourceVolumePersistent ResourceType = "VOLUME_PERSISTENT"
	ResourceVolumeVolatile   ResourceType = "VOLUME_VOLATILE"
)

var resourceTypes = map[ResourceType]bool{
	ResourceCertClient:       true,
	ResourceCertServer:       true,
	ResourceFaultGroup:       true,
	ResourceVhost:            true,
	ResourceVolumePersistent: true,
	ResourceVolumeVolatile:   true,
}

// ParseResourceType maps a manifest type name to a known resource type.
func ParseResourceType(s string) (ResourceType, bool) {
	t := ResourceType(s)
	return t, resourceTypes[t]
}

/**
 * Normalized parameter declaration
 * @property {string} name - Parameter name
 * @property {ParameterType} type - Parameter type
 * @property {string} default - Manifest default, empty when not declared
 */
type ParameterDescriptor struct {
	Name    string        `json:"name"`
	Type    ParameterType `json:"type"`
	Default string        `json:"default"`
}

type ResourceDescriptor struct {
	Name string       `json:"name"`
	Type ResourceType `json:"type"`
}
