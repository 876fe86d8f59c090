// Package handlers implements the fabkube commands.
package handlers

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/imamik/fabkube/internal/config"
	"github.com/imamik/fabkube/internal/fabric"
	"github.com/imamik/fabkube/internal/k8s"
	"github.com/imamik/fabkube/internal/provision"
)

// Globals are the values of the root command's persistent flags.
type Globals struct {
	ConfigPath  string
	MetricsFile string
}

// Factory function variables - can be replaced in tests.
var (
	loadConfig        = config.Load
	newClientset      = k8s.NewClientset
	waitForDeployment = k8s.WaitForDeployment

	// writeMetrics dumps the controller-runtime registry, which holds the
	// provisioner metrics, for the node exporter textfile collector.
	writeMetrics = func(path string) error {
		return prometheus.WriteToTextfile(path, metrics.Registry)
	}
)

// newSynthesizer builds a synthesizer from the image, layout and state
// database settings.
func newSynthesizer(cfg *config.Config) (*fabric.Synthesizer, error) {
	layout, err := fabric.LayoutFor(cfg.Layout)
	if err != nil {
		return nil, err
	}

	return fabric.NewSynthesizer(
		fabric.WithImages(fabric.Images{
			CA:      cfg.Images.CA,
			Orderer: cfg.Images.Orderer,
			Peer:    cfg.Images.Peer,
		}),
		fabric.WithLayout(layout),
		fabric.WithStateDB(fabric.StateDB{
			Backend:  cfg.StateDB.Backend,
			Address:  cfg.StateDB.Address,
			Username: cfg.StateDB.Username,
			Password: cfg.StateDB.Password,
		}),
	), nil
}

// connect builds a clientset for the cluster named by the configuration and
// a provisioner on top of it.
func connect(cfg *config.Config, g Globals) (kubernetes.Interface, *provision.Provisioner, error) {
	clientset, err := newClientset(cfg.Kubeconfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to cluster: %w", err)
	}

	prov := provision.New(clientset, provision.Options{
		SharedStorage: cfg.SharedStorage,
		EnableMetrics: g.MetricsFile != "",
	})
	return clientset, prov, nil
}

// resolveNamespace returns override when set, the configured namespace
// otherwise. An override is validated like the configured namespace.
func resolveNamespace(cfg *config.Config, override string) (string, error) {
	if override == "" {
		return cfg.Namespace, nil
	}
	if err := config.ValidateNamespace(override); err != nil {
		return "", err
	}
	return override, nil
}

// flushMetrics writes the metrics file if one was requested. A failure is
// logged, never returned.
func flushMetrics(ctx context.Context, g Globals) {
	if g.MetricsFile == "" {
		return
	}
	if err := writeMetrics(g.MetricsFile); err != nil {
		log.FromContext(ctx).Error(err, "failed to write metrics file", "path", g.MetricsFile)
	}
}
