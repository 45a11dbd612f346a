package manifest

import (
	"bytes"
	"encoding/json"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/models"
)

/**
 * Normalize raw parameter declarations
 * @param {[]models.RawParameter} raw - configuration.parameters of a manifest
 * @returns {[]models.ParameterDescriptor} Typed descriptors in declaration order
 * @description
 * - Declarations with an unknown type are skipped
 * - A JSON string default is kept as its content, any other JSON default as its compact text
 */
func NormalizeParameters(raw []models.RawParameter) []models.ParameterDescriptor {
	params := make([]models.ParameterDescriptor, 0, len(raw))
	for _, p := range raw {
		t, ok := models.ParseParameterType(p.Type)
		if !ok {
			logger.Debugf("Skipping parameter '%s' with unknown type '%s'", p.Name, p.Type)
			continue
		}
		params = append(params, models.ParameterDescriptor{
			Name:    p.Name,
			Type:    t,
			Default: defaultLiteral(p.Default),
		})
	}
	return params
}

// NormalizeResources is NormalizeParameters for configuration.resources.
func NormalizeResources(raw []models.RawResource) []models.ResourceDescriptor {
	resources := make([]models.ResourceDescriptor, 0, len(raw))
	for _, r := range raw {
		t, ok := models.ParseResourceType(r.Type)
		if !ok {
			logger.Debugf("Skipping resource '%s' with unknown type '%s'", r.Name, r.Type)
			continue
		}
		resources = append(resources, models.ResourceDescriptor{Name: r.Name, Type: t})
	}
	return resources
}

func defaultLiteral(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
