package provision

import (
	"context"
	"fmt"

	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/config"
)

// Options configures a Provisioner.
type Options struct {
	// SharedStorage enables the GlusterFS chain when both hosts and volume
	// are set.
	SharedStorage config.SharedStorage

	// EnableMetrics records every operation in the provisioner metrics.
	EnableMetrics bool
}

// Provisioner performs all control plane calls for node provisioning.
// It holds no mutable state and is safe for concurrent use.
type Provisioner struct {
	clientset     kubernetes.Interface
	storage       config.SharedStorage
	enableMetrics bool
}

// New creates a Provisioner backed by clientset.
func New(clientset kubernetes.Interface, opts Options) *Provisioner {
	return &Provisioner{
		clientset:     clientset,
		storage:       opts.SharedStorage,
		enableMetrics: opts.EnableMetrics,
	}
}

// settle applies the failure policy of op to err. It logs the failure and
// returns nil for best-effort operations, the wrapped error otherwise.
func (p *Provisioner) settle(ctx context.Context, op Operation, name string, err error) error {
	logger := log.FromContext(ctx).WithValues("operation", string(op), "kind", op.Kind(), "name", name)

	if PolicyFor(op) == BestEffort {
		logger.Error(err, "operation failed, continuing")
		return nil
	}

	logger.Error(err, "operation failed")
	return fmt.Errorf("%s %s: %w", op, name, err)
}
