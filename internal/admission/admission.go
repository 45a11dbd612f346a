package admission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"eslap-workspace/internal/models"
	"eslap-workspace/internal/rpc"
)

// Stub is the client side of a stamp admission service.
type Stub interface {
	ModifyDeployment(ctx context.Context, modification *models.ScalingDeploymentModification) (json.RawMessage, error)
	Undeploy(ctx context.Context, urn string) ([]models.DeploymentInstanceInfo, error)
	Register(ctx context.Context, bundleName string, bundle io.Reader) (*models.RegistrationResult, error)
	FindDeployments(ctx context.Context) (map[string]models.DeploymentInstanceInfo, error)
	Close() error
}

// StubFactory builds a stub bound to an admission URL and token.
type StubFactory interface {
	GetStub(url string, token string) Stub
}

type httpStubFactory struct {
	timeout time.Duration
}

// NewStubFactory returns a factory of HTTP stubs using the given transport timeout.
func NewStubFactory(timeout time.Duration) StubFactory {
	return &httpStubFactory{timeout: timeout}
}

func (f *httpStubFactory) GetStub(url string, token string) Stub {
	return &httpStub{
		url: url,
		client: rpc.NewHTTPClient(&rpc.HTTPConfig{
			BaseURL: url,
			Token:   token,
			Timeout: f.timeout,
		}),
	}
}

type httpStub struct {
	url    string
	client rpc.HTTPClient
}

/**
 * Change the configuration of a running deployment
 * @param {*models.ScalingDeploymentModification} modification - Deployment URN and instances per role
 * @returns {json.RawMessage} The "data" member of the admission answer, untouched
 * @description
 * - PUT <admission>/deployments/configuration
 */
func (s *httpStub) ModifyDeployment(ctx context.Context, modification *models.ScalingDeploymentModification) (json.RawMessage, error) {
	resp, err := s.client.Put(ctx, "deployments/configuration", modification)
	return unwrap(resp, err)
}

// Undeploy removes a deployment: DELETE <admission>/deployments?urn=<urn>.
func (s *httpStub) Undeploy(ctx context.Context, urn string) ([]models.DeploymentInstanceInfo, error) {
	resp, err := s.client.Delete(ctx, "deployments", url.Values{"urn": {urn}})
	data, err := unwrap(resp, err)
	if err != nil {
		return nil, err
	}
	instances := []models.DeploymentInstanceInfo{}
	if len(data) == 0 || string(data) == "null" {
		return instances, nil
	}
	if err := json.Unmarshal(data, &instances); err != nil {
		return nil, fmt.Errorf("%w: unexpected undeploy answer: %v", models.ErrRemoteOperationFailed, err)
	}
	return instances, nil
}

// Register uploads a bundle: POST <admission>/bundles, multipart field "bundlesJson".
func (s *httpStub) Register(ctx context.Context, bundleName string, bundle io.Reader) (*models.RegistrationResult, error) {
	resp, err := s.client.Upload(ctx, "bundles", "bundlesJson", bundleName, bundle)
	data, err := unwrap(resp, err)
	if err != nil {
		return nil, err
	}
	result := &models.RegistrationResult{}
	if len(data) == 0 || string(data) == "null" {
		return result, nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("%w: unexpected registration answer: %v", models.ErrRemoteOperationFailed, err)
	}
	return result, nil
}

// FindDeployments lists the deployments of the stamp: GET <admission>/deployments.
func (s *httpStub) FindDeployments(ctx context.Context) (map[string]models.DeploymentInstanceInfo, error) {
	resp, err := s.client.Get(ctx, "deployments", nil)
	data, err := unwrap(resp, err)
	if err != nil {
		return nil, err
	}
	deployments := map[string]models.DeploymentInstanceInfo{}
	if len(data) == 0 || string(data) == "null" {
		return deployments, nil
	}
	if err := json.Unmarshal(data, &deployments); err != nil {
		return nil, fmt.Errorf("%w: unexpected deployments answer: %v", models.ErrRemoteOperationFailed, err)
	}
	return deployments, nil
}

func (s *httpStub) Close() error {
	return s.client.Close()
}

/**
 * Extract the payload of an admission answer
 * @description
 * - Transport errors, non 2xx statuses and {"success": false} all become ErrRemoteOperationFailed
 *   carrying the remote message as reported
 * - A body that is not an admission envelope is returned whole as the payload
 */
func unwrap(resp *rpc.HTTPResponse, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRemoteOperationFailed, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", models.ErrRemoteOperationFailed, resp.Error)
	}
	var envelope models.AdmissionResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil || !isEnvelope(resp.Body) {
		return json.RawMessage(resp.Body), nil
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%w: %s", models.ErrRemoteOperationFailed, envelope.Message)
	}
	return envelope.Data, nil
}

func isEnvelope(body []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	_, ok := fields["success"]
	return ok
}
