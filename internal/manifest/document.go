package manifest

import (
	"eslap-workspace/internal/models"
)

// Document is a loaded component or service manifest together with its workspace path.
type Document struct {
	models.Manifest
	Path string
}

// Service loads the manifest of a service.
func (s *Store) Service(id Identity) (*Document, error) {
	return s.load(KindServices, id)
}

// Component loads the manifest of a component.
func (s *Store) Component(id Identity) (*Document, error) {
	return s.load(KindComponents, id)
}

func (s *Store) load(kind string, id Identity) (*Document, error) {
	path, err := s.Locate(kind, id)
	if err != nil {
		return nil, err
	}
	m, err := s.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return &Document{Manifest: *m, Path: path}, nil
}

// RoleList returns the declared roles; a manifest without "roles" is malformed.
func (d *Document) RoleList() ([]models.Role, error) {
	if d.Roles == nil {
		return nil, &models.MalformedManifestError{Path: d.Path, Field: "roles"}
	}
	roles := make([]models.Role, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, models.Role{Name: r.Name, Component: r.Component})
	}
	return roles, nil
}

func (d *Document) Parameters() []models.ParameterDescriptor {
	if d.Configuration == nil {
		return []models.ParameterDescriptor{}
	}
	return NormalizeParameters(d.Configuration.Parameters)
}

func (d *Document) Resources() []models.ResourceDescriptor {
	if d.Configuration == nil {
		return []models.ResourceDescriptor{}
	}
	return NormalizeResources(d.Configuration.Resources)
}

func (d *Document) ProvidedChannels() []models.Channel {
	if d.Channels == nil {
		return []models.Channel{}
	}
	return append([]models.Channel{}, d.Channels.Provides...)
}

func (d *Document) RequiredChannels() []models.Channel {
	if d.Channels == nil {
		return []models.Channel{}
	}
	return append([]models.Channel{}, d.Channels.Requires...)
}

// Identity parses the URN held in the manifest "name" field.
func (d *Document) Identity() (Identity, error) {
	if d.Name == "" {
		return Identity{}, &models.MalformedManifestError{Path: d.Path, Field: "name"}
	}
	return ParseName(d.Name), nil
}
