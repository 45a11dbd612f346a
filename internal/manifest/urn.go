package manifest

import (
	"fmt"
	"strings"
)

// Kinds of workspace elements; each one is also the workspace subdirectory holding them.
const (
	KindComponents  = "components"
	KindServices    = "services"
	KindDeployments = "deployments"
)

// Identity is the domain/name/version triple encoded in an element URN.
type Identity struct {
	Domain  string
	Name    string
	Version string
}

/**
 * Parse an element URN
 * @param {string} urn - e.g. eslap://acme/services/webapp/2.1
 * @returns {Identity} Domain at index 2, name at index 4 and version at index 5 of the "/" split
 * @description
 * - Missing segments are left empty, no validation of the scheme or kind is done
 */
func ParseName(urn string) Identity {
	parts := strings.Split(urn, "/")
	at := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return Identity{
		Domain:  at(2),
		Name:    at(4),
		Version: at(5),
	}
}

// GenerateURN builds eslap://<domain>/<kind>/<name>/<version>.
func GenerateURN(kind, domain, name, version string) string {
	return fmt.Sprintf("eslap://%s/%s/%s/%s", domain, kind, name, version)
}
