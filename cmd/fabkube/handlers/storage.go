package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	utilnet "k8s.io/apimachinery/pkg/util/net"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/util/retry"
)

// ErrStorageNotConfigured is returned by StorageEnsure when no GlusterFS
// hosts or volume are configured.
var ErrStorageNotConfigured = errors.New("shared storage is not configured (set GLUSTER_HOSTS and GLUSTER_VOL_NAME)")

// StorageEnsure creates the shared storage chain of a namespace, retrying
// transient failures. Each attempt resumes at the first missing object.
func StorageEnsure(ctx context.Context, g Globals, name string) error {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return err
	}
	namespace, err := resolveNamespace(cfg, name)
	if err != nil {
		return err
	}
	if !cfg.SharedStorage.Enabled() {
		return ErrStorageNotConfigured
	}
	defer flushMetrics(ctx, g)

	_, prov, err := connect(cfg, g)
	if err != nil {
		return err
	}

	logger := log.FromContext(ctx).WithValues("namespace", namespace)

	err = retry.WithExponentialBackoff(ctx, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
		defer cancel()
		return prov.EnsureSharedStorage(attemptCtx, namespace)
	},
		retry.WithMaxRetries(cfg.Retry.MaxAttempts-1),
		retry.WithInitialDelay(cfg.Retry.InitialDelay),
		retry.WithRetryable(isTransient),
		retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			logger.Info("shared storage not ready, retrying", "attempt", attempt, "delay", delay, "error", err.Error())
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure shared storage in %s: %w", namespace, err)
	}

	logger.Info("shared storage ready")
	return nil
}

// isTransient reports whether a control plane error may clear up on its
// own. AlreadyExists means a concurrent caller won the create race; the next
// attempt reads the object and moves on.
func isTransient(err error) bool {
	return apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsInternalError(err) ||
		apierrors.IsAlreadyExists(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		utilnet.IsConnectionRefused(err) ||
		utilnet.IsConnectionReset(err)
}
