package stamp

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"eslap-workspace/internal/admission"
	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/models"
)

// Bridge forwards lifecycle operations to the admission service of a stamp.
// Every call issues exactly one remote request and never retries; remote
// failures come back as ErrRemoteOperationFailed with the remote message.
type Bridge struct {
	factory admission.StubFactory
}

func NewBridge(factory admission.StubFactory) *Bridge {
	return &Bridge{factory: factory}
}

// AdmissionURL returns the admission endpoint of a stamp.
func AdmissionURL(stamp models.StampConfig) string {
	return strings.TrimSuffix(stamp.Admission, "/") + "/admission"
}

func (b *Bridge) stub(stamp models.StampConfig) admission.Stub {
	return b.factory.GetStub(AdmissionURL(stamp), stamp.Token)
}

/**
 * Change the number of instances of one role
 * @param {string} deployment - Deployment URN or name
 * @param {string} role - Role to scale
 * @param {int} numInstances - New number of instances
 * @param {models.StampConfig} stamp - Stamp hosting the deployment
 * @returns {string} "Result: <remote result>"
 */
func (b *Bridge) ScaleRole(ctx context.Context, deployment string, role string, numInstances int, stamp models.StampConfig) (string, error) {
	stub := b.stub(stamp)
	defer stub.Close()

	modification := &models.ScalingDeploymentModification{
		DeploymentURN: deployment,
		Scaling:       map[string]int{role: numInstances},
	}
	logger.Debugf("Scaling role '%s' of '%s' to %d instances through %s", role, deployment, numInstances, AdmissionURL(stamp))
	value, err := stub.ModifyDeployment(ctx, modification)
	if err != nil {
		return "", err
	}
	return "Result: " + resultText(value), nil
}

// Undeploy removes a deployment and returns the instances the stamp reports.
func (b *Bridge) Undeploy(ctx context.Context, deployment string, stamp models.StampConfig) ([]models.DeploymentInstanceInfo, error) {
	stub := b.stub(stamp)
	defer stub.Close()
	return stub.Undeploy(ctx, deployment)
}

// Register uploads a bundle (a manifest file) to the stamp.
func (b *Bridge) Register(ctx context.Context, bundleName string, bundle io.Reader, stamp models.StampConfig) (*models.RegistrationResult, error) {
	stub := b.stub(stamp)
	defer stub.Close()
	return stub.Register(ctx, bundleName, bundle)
}

func (b *Bridge) FindDeployments(ctx context.Context, stamp models.StampConfig) (map[string]models.DeploymentInstanceInfo, error) {
	stub := b.stub(stamp)
	defer stub.Close()
	return stub.FindDeployments(ctx)
}

func resultText(value json.RawMessage) string {
	if len(value) == 0 {
		return "null"
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	return string(value)
}
