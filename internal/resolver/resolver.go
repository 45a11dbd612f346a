package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"

	"github.com/iancoleman/orderedmap"
)

// Resolver turns a service manifest and the manifests of its role components into
// the flat parameter and resource lists used to generate a deployment.
// It keeps no state between calls; every call reads the manifests again.
type Resolver struct {
	store *manifest.Store
}

func New(store *manifest.Store) *Resolver {
	return &Resolver{store: store}
}

func serviceIdentity(cfg models.ServiceConfig) manifest.Identity {
	return manifest.Identity{Domain: cfg.Domain, Name: cfg.Name, Version: cfg.Version}
}

/**
 * Resolve the deployment parameters of a service
 * @param {models.ServiceConfig} cfg - Service identity
 * @returns {[]models.ResolvedConfigItem} Parameters in declaration order with default values
 * @description
 * - Every parameter gets its manifest default or the default of its type
 * - A JSON parameter named after a role bound to a component gets, instead, a JSON object
 *   with the defaulted parameters of that component (one level, no further expansion)
 * @throws
 * - ErrManifestNotFound for a missing service or component manifest
 * - MalformedManifestError when the service manifest has no roles
 */
func (r *Resolver) ResolveParameters(cfg models.ServiceConfig) ([]models.ResolvedConfigItem, error) {
	doc, err := r.store.Service(serviceIdentity(cfg))
	if err != nil {
		return nil, err
	}
	roles, err := doc.RoleList()
	if err != nil {
		return nil, err
	}

	items := DefaultParameters(doc.Parameters())
	for i := range items {
		if items[i].Type != string(models.ParameterJSON) {
			continue
		}
		role := findRole(items[i].Name, roles)
		if role == nil || role.Component == "" {
			continue
		}
		value, err := r.roleConfiguration(role)
		if err != nil {
			return nil, err
		}
		items[i].Value = value
	}
	return items, nil
}

// ResolveResources returns the resources of a service, each with the empty placeholder value.
func (r *Resolver) ResolveResources(cfg models.ServiceConfig) ([]models.ResolvedConfigItem, error) {
	doc, err := r.store.Service(serviceIdentity(cfg))
	if err != nil {
		return nil, err
	}
	return DefaultResources(doc.Resources()), nil
}

// ComponentParameters returns the normalized parameters of the component behind a URN.
func (r *Resolver) ComponentParameters(urn string) ([]models.ParameterDescriptor, error) {
	doc, err := r.store.Component(manifest.ParseName(urn))
	if err != nil {
		return nil, err
	}
	return doc.Parameters(), nil
}

func (r *Resolver) roleConfiguration(role *models.Role) (string, error) {
	params, err := r.ComponentParameters(role.Component)
	if err != nil {
		return "", fmt.Errorf("role '%s': %w", role.Name, err)
	}
	logger.Debugf("Synthesizing configuration of role '%s' from %d parameters of %s", role.Name, len(params), role.Component)
	return objectLiteral(DefaultParameters(params))
}

// objectLiteral encodes items as a JSON object keyed by name, in order.
// Values that are not valid JSON are encoded as strings.
func objectLiteral(items []models.ResolvedConfigItem) (string, error) {
	o := orderedmap.New()
	o.SetEscapeHTML(false)
	for _, item := range items {
		if json.Valid([]byte(item.Value)) {
			o.Set(item.Name, json.RawMessage(item.Value))
		} else {
			o.Set(item.Name, item.Value)
		}
	}
	// json.Marshal would escape HTML again
	data, err := o.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode role configuration: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", fmt.Errorf("failed to encode role configuration: %w", err)
	}
	return buf.String(), nil
}

func findRole(name string, roles []models.Role) *models.Role {
	for i := range roles {
		if roles[i].Name == name {
			return &roles[i]
		}
	}
	return nil
}
