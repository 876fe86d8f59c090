package provision

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// EnsureNamespace makes sure the namespace exists and, when shared storage
// is enabled, that its storage chain exists too.
//
// Namespace failures are logged and never returned. The storage chain runs
// whether the namespace was created by this call or already existed, and
// its error is returned.
func (p *Provisioner) EnsureNamespace(ctx context.Context, name string) error {
	p.ensureNamespace(ctx, name)

	if !p.storage.Enabled() {
		return nil
	}
	return p.EnsureSharedStorage(ctx, name)
}

func (p *Provisioner) ensureNamespace(ctx context.Context, name string) {
	logger := log.FromContext(ctx).WithValues("namespace", name)
	start := time.Now()

	_, err := p.clientset.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		logger.V(1).Info("namespace already exists")
		p.record(OpEnsureNamespace, resultExists, start)
		return
	}
	if !apierrors.IsNotFound(err) {
		p.record(OpEnsureNamespace, resultFailed, start)
		_ = p.settle(ctx, OpEnsureNamespace, name, err)
		return
	}

	if _, err := p.clientset.CoreV1().Namespaces().Create(ctx, namespaceObject(name), metav1.CreateOptions{}); err != nil {
		p.record(OpEnsureNamespace, resultFailed, start)
		_ = p.settle(ctx, OpEnsureNamespace, name, err)
		return
	}

	p.record(OpEnsureNamespace, resultCreated, start)
	logger.Info("created namespace")
}

func namespaceObject(name string) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
	}
}
