package provision

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/descriptor"
)

// CreateDeployment creates the deployment described by d in namespace.
// It does not check for an existing object: a second call for the same name
// returns an error for which apierrors.IsAlreadyExists reports true.
func (p *Provisioner) CreateDeployment(ctx context.Context, namespace string, d descriptor.Deployment) (*appsv1.Deployment, error) {
	start := time.Now()
	created, err := p.clientset.AppsV1().Deployments(namespace).Create(ctx, d.Object(namespace), metav1.CreateOptions{})
	if err != nil {
		p.record(OpCreateDeployment, resultFailed, start)
		return nil, p.settle(ctx, OpCreateDeployment, d.Name, fmt.Errorf("failed to create deployment: %w", err))
	}

	p.record(OpCreateDeployment, resultCreated, start)
	log.FromContext(ctx).Info("created deployment", "namespace", namespace, "name", created.Name)
	return created, nil
}

// CreateService creates the service described by s in namespace. Like
// CreateDeployment it is not idempotent.
func (p *Provisioner) CreateService(ctx context.Context, namespace string, s descriptor.Service) (*corev1.Service, error) {
	start := time.Now()
	created, err := p.clientset.CoreV1().Services(namespace).Create(ctx, s.Object(namespace), metav1.CreateOptions{})
	if err != nil {
		p.record(OpCreateService, resultFailed, start)
		return nil, p.settle(ctx, OpCreateService, s.Name, fmt.Errorf("failed to create service: %w", err))
	}

	p.record(OpCreateService, resultCreated, start)
	log.FromContext(ctx).Info("created service", "namespace", namespace, "name", created.Name)
	return created, nil
}

// CreateIngress creates the ingress described by i in namespace.
func (p *Provisioner) CreateIngress(ctx context.Context, namespace string, i descriptor.Ingress) (*networkingv1.Ingress, error) {
	start := time.Now()
	created, err := p.clientset.NetworkingV1().Ingresses(namespace).Create(ctx, i.Object(namespace), metav1.CreateOptions{})
	if err != nil {
		p.record(OpCreateIngress, resultFailed, start)
		return nil, p.settle(ctx, OpCreateIngress, i.Name, fmt.Errorf("failed to create ingress: %w", err))
	}

	p.record(OpCreateIngress, resultCreated, start)
	log.FromContext(ctx).Info("created ingress", "namespace", namespace, "name", created.Name)
	return created, nil
}
