package provision

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/util/ptr"
)

// deleteGracePeriodSeconds is the grace period given to node pods.
const deleteGracePeriodSeconds = 10

// DeleteDeployment deletes a deployment and waits for the API server to
// remove its pods first. Failures are logged only.
func (p *Provisioner) DeleteDeployment(ctx context.Context, namespace, name string) {
	p.delete(ctx, OpDeleteDeployment, name, func(ctx context.Context) error {
		return p.clientset.AppsV1().Deployments(namespace).Delete(ctx, name, deploymentDeleteOptions())
	})
}

// DeleteService deletes a service. Failures are logged only.
func (p *Provisioner) DeleteService(ctx context.Context, namespace, name string) {
	p.delete(ctx, OpDeleteService, name, func(ctx context.Context) error {
		return p.clientset.CoreV1().Services(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	})
}

// DeleteIngress deletes an ingress. Failures are logged only.
func (p *Provisioner) DeleteIngress(ctx context.Context, namespace, name string) {
	p.delete(ctx, OpDeleteIngress, name, func(ctx context.Context) error {
		return p.clientset.NetworkingV1().Ingresses(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	})
}

func (p *Provisioner) delete(ctx context.Context, op Operation, name string, fn func(context.Context) error) {
	logger := log.FromContext(ctx).WithValues("kind", op.Kind(), "name", name)
	start := time.Now()

	err := fn(ctx)
	switch {
	case err == nil:
		p.record(op, resultDeleted, start)
		logger.Info("deleted object")
	case apierrors.IsNotFound(err):
		p.record(op, resultMissing, start)
		logger.V(1).Info("object already absent")
	default:
		p.record(op, resultFailed, start)
		_ = p.settle(ctx, op, name, err)
	}
}

// deploymentDeleteOptions removes the pods before the deployment and gives
// them deleteGracePeriodSeconds to stop.
func deploymentDeleteOptions() metav1.DeleteOptions {
	propagation := metav1.DeletePropagationForeground
	return metav1.DeleteOptions{
		PropagationPolicy:  &propagation,
		GracePeriodSeconds: ptr.Int64(deleteGracePeriodSeconds),
	}
}
