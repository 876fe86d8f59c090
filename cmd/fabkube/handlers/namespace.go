package handlers

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// NamespaceEnsure creates the namespace and, when configured, its shared
// storage.
func NamespaceEnsure(ctx context.Context, g Globals, name string) error {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return err
	}
	namespace, err := resolveNamespace(cfg, name)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, g)

	_, prov, err := connect(cfg, g)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	if err := prov.EnsureNamespace(ctx, namespace); err != nil {
		return fmt.Errorf("failed to ensure namespace %s: %w", namespace, err)
	}

	log.FromContext(ctx).Info("namespace ready", "namespace", namespace, "sharedStorage", cfg.SharedStorage.Enabled())
	return nil
}
