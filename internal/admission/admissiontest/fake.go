// Package admissiontest provides an in-memory admission stub for tests.
package admissiontest

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"eslap-workspace/internal/admission"
	"eslap-workspace/internal/models"
)

// Call is one operation received by the fake stub.
type Call struct {
	URL          string
	Token        string
	Operation    string
	Modification *models.ScalingDeploymentModification
	URN          string
	Bundle       string
}

// Factory records every stub operation and answers with the configured values.
type Factory struct {
	mu    sync.Mutex
	calls []Call

	ModifyResult json.RawMessage
	Instances    []models.DeploymentInstanceInfo
	Registration *models.RegistrationResult
	Deployments  map[string]models.DeploymentInstanceInfo
	Err          error
}

func (f *Factory) GetStub(url string, token string) admission.Stub {
	return &stub{factory: f, url: url, token: token}
}

// Calls returns a copy of the recorded operations.
func (f *Factory) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call{}, f.calls...)
}

func (f *Factory) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.Err
}

type stub struct {
	factory *Factory
	url     string
	token   string
}

func (s *stub) call(op string) Call {
	return Call{URL: s.url, Token: s.token, Operation: op}
}

func (s *stub) ModifyDeployment(ctx context.Context, modification *models.ScalingDeploymentModification) (json.RawMessage, error) {
	c := s.call("modifyDeployment")
	c.Modification = modification
	if err := s.factory.record(c); err != nil {
		return nil, err
	}
	return s.factory.ModifyResult, nil
}

func (s *stub) Undeploy(ctx context.Context, urn string) ([]models.DeploymentInstanceInfo, error) {
	c := s.call("undeploy")
	c.URN = urn
	if err := s.factory.record(c); err != nil {
		return nil, err
	}
	return s.factory.Instances, nil
}

func (s *stub) Register(ctx context.Context, bundleName string, bundle io.Reader) (*models.RegistrationResult, error) {
	content, err := io.ReadAll(bundle)
	if err != nil {
		return nil, err
	}
	c := s.call("register")
	c.URN = bundleName
	c.Bundle = string(content)
	if err := s.factory.record(c); err != nil {
		return nil, err
	}
	if s.factory.Registration == nil {
		return &models.RegistrationResult{}, nil
	}
	return s.factory.Registration, nil
}

func (s *stub) FindDeployments(ctx context.Context) (map[string]models.DeploymentInstanceInfo, error) {
	if err := s.factory.record(s.call("findDeployments")); err != nil {
		return nil, err
	}
	return s.factory.Deployments, nil
}

func (s *stub) Close() error {
	return nil
}
