package agent

import (
	"context"
	"errors"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/descriptor"
	"github.com/imamik/fabkube/internal/fabric"
	"github.com/imamik/fabkube/internal/util/naming"
)

// ErrUnsupportedNodeType is returned for node types the synthesizer has no
// table for.
var ErrUnsupportedNodeType = errors.New("unsupported node type")

// NodeProvisioner is the subset of the cluster provisioner the agent needs.
type NodeProvisioner interface {
	EnsureNamespace(ctx context.Context, name string) error
	CreateDeployment(ctx context.Context, namespace string, d descriptor.Deployment) (*appsv1.Deployment, error)
	CreateService(ctx context.Context, namespace string, s descriptor.Service) (*corev1.Service, error)
	DeleteDeployment(ctx context.Context, namespace, name string)
	DeleteService(ctx context.Context, namespace, name string)
	DeleteIngress(ctx context.Context, namespace, name string)
}

// Agent provisions Fabric nodes into a single namespace.
type Agent struct {
	synth     *fabric.Synthesizer
	prov      NodeProvisioner
	namespace string
}

// New creates an Agent. prov may be nil when only Render is used.
func New(synth *fabric.Synthesizer, prov NodeProvisioner, namespace string) *Agent {
	return &Agent{
		synth:     synth,
		prov:      prov,
		namespace: namespace,
	}
}

// Namespace returns the namespace nodes are provisioned into.
func (a *Agent) Namespace() string {
	return a.namespace
}

// Objects are the typed objects of a single node.
type Objects struct {
	Deployment *appsv1.Deployment
	Service    *corev1.Service
}

// List returns the objects in creation order.
func (o Objects) List() []runtime.Object {
	return []runtime.Object{o.Deployment, o.Service}
}

// Result describes a provisioned node.
type Result struct {
	Type       fabric.NodeType
	Namespace  string
	Deployment *appsv1.Deployment
	Service    *corev1.Service
}

// NodePorts maps service port names to the node ports the cluster assigned.
func (r *Result) NodePorts() map[string]int32 {
	ports := make(map[string]int32, len(r.Service.Spec.Ports))
	for _, p := range r.Service.Spec.Ports {
		ports[p.Name] = p.NodePort
	}
	return ports
}

// Render synthesizes a node and builds its objects without contacting the
// cluster.
func (a *Agent) Render(t fabric.NodeType, id fabric.NodeIdentity) (Objects, error) {
	spec, err := a.synthesize(t, id)
	if err != nil {
		return Objects{}, err
	}
	return Objects{
		Deployment: spec.Deployment.Object(a.namespace),
		Service:    spec.Service.Object(a.namespace),
	}, nil
}

// CreateNode provisions a node. The namespace step is idempotent, the
// deployment and service steps are not: calling CreateNode twice for the
// same node fails with AlreadyExists from the deployment step.
func (a *Agent) CreateNode(ctx context.Context, t fabric.NodeType, id fabric.NodeIdentity) (*Result, error) {
	if err := id.Validate(t); err != nil {
		return nil, fmt.Errorf("invalid %s identity: %w", t, err)
	}

	spec, err := a.synthesize(t, id)
	if err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx).WithValues("type", string(t), "node", id.NodeName, "namespace", a.namespace)
	ctx = log.IntoContext(ctx, logger)

	if err := a.prov.EnsureNamespace(ctx, a.namespace); err != nil {
		return nil, fmt.Errorf("failed to prepare namespace: %w", err)
	}

	deployment, err := a.prov.CreateDeployment(ctx, a.namespace, spec.Deployment)
	if err != nil {
		return nil, err
	}

	service, err := a.prov.CreateService(ctx, a.namespace, spec.Service)
	if err != nil {
		return nil, err
	}

	logger.Info("node provisioned", "image", spec.Container().Image)
	return &Result{
		Type:       t,
		Namespace:  a.namespace,
		Deployment: deployment,
		Service:    service,
	}, nil
}

// DeleteNode removes the deployment, service and ingress named after the
// node. Missing objects and failures are logged only.
func (a *Agent) DeleteNode(ctx context.Context, nodeName string) {
	logger := log.FromContext(ctx).WithValues("node", nodeName, "namespace", a.namespace)
	ctx = log.IntoContext(ctx, logger)

	a.prov.DeleteDeployment(ctx, a.namespace, naming.Deployment(nodeName))
	a.prov.DeleteService(ctx, a.namespace, naming.Service(nodeName))
	a.prov.DeleteIngress(ctx, a.namespace, nodeName)

	logger.Info("node deleted")
}

func (a *Agent) synthesize(t fabric.NodeType, id fabric.NodeIdentity) (fabric.NodeSpec, error) {
	spec := a.synth.Synthesize(t, id)
	if spec.Empty() {
		return fabric.NodeSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedNodeType, t)
	}
	return spec, nil
}
