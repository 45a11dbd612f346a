package resolver

import "eslap-workspace/internal/models"

// emptyString is the literal of an empty JSON string.
const emptyString = `""`

/**
 * Compute the literal value of a parameter
 * @param {models.ParameterDescriptor} p - Normalized parameter
 * @returns {string} The manifest default when present, else the type default
 * @description
 * - BOOLEAN: false
 * - INTEGER, NUMBER: 0
 * - JSON: {}
 * - LIST: []
 * - STRING, VHOST: ""
 */
func DefaultValue(p models.ParameterDescriptor) string {
	if p.Default != "" {
		return p.Default
	}
	switch p.Type {
	case models.ParameterBoolean:
		return "false"
	case models.ParameterInteger, models.ParameterNumber:
		return "0"
	case models.ParameterJSON:
		return "{}"
	case models.ParameterList:
		return "[]"
	default:
		return emptyString
	}
}

// DefaultParameters resolves every parameter to its default literal, keeping order.
func DefaultParameters(params []models.ParameterDescriptor) []models.ResolvedConfigItem {
	items := make([]models.ResolvedConfigItem, 0, len(params))
	for _, p := range params {
		items = append(items, models.ResolvedConfigItem{
			Name:  p.Name,
			Type:  string(p.Type),
			Value: DefaultValue(p),
		})
	}
	return items
}

// DefaultResources gives every resource the empty string placeholder whatever its type.
// Resource values are provisioned later by the stamp.
func DefaultResources(resources []models.ResourceDescriptor) []models.ResolvedConfigItem {
	items := make([]models.ResolvedConfigItem, 0, len(resources))
	for _, r := range resources {
		items = append(items, models.ResolvedConfigItem{
			Name:  r.Name,
			Type:  string(r.Type),
			Value: emptyString,
		})
	}
	return items
}
