package config

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/huh"
	"k8s.io/apimachinery/pkg/api/resource"
)

// WizardResult holds the answers of the interactive init wizard.
type WizardResult struct {
	Namespace string

	EnableSharedStorage bool
	GlusterHosts        string
	GlusterVolume       string
	StorageCapacity     string

	Layout string

	StateDBBackend  string
	StateDBAddress  string
	StateDBUsername string
	StateDBPassword string
}

// ToConfig converts the answers into a configuration holding only the
// values the user chose. Defaults are applied again on Load.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Namespace: r.Namespace,
		Layout:    r.Layout,
	}

	if r.EnableSharedStorage {
		cfg.SharedStorage = SharedStorage{
			Hosts:    splitHosts(r.GlusterHosts),
			Volume:   strings.TrimSpace(r.GlusterVolume),
			Capacity: r.StorageCapacity,
		}
	}

	if r.StateDBBackend == "CouchDB" {
		cfg.StateDB = StateDB{
			Backend:  r.StateDBBackend,
			Address:  r.StateDBAddress,
			Username: r.StateDBUsername,
			Password: r.StateDBPassword,
		}
	}

	return cfg
}

// RunWizard asks for the settings a first deployment needs. The context is
// used for cancellation (Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		Namespace:       DefaultNamespace,
		StorageCapacity: DefaultStorageCapacity,
		Layout:          DefaultLayout,
		StateDBBackend:  DefaultStateDBBackend,
		StateDBAddress:  DefaultStateDBAddress,
	}

	if err := runNamespaceGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("namespace: %w", err)
	}

	if err := runStorageGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("shared storage: %w", err)
	}

	if err := runStateDBGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("state database: %w", err)
	}

	return result, nil
}

func runNamespaceGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Kubernetes namespace the Fabric nodes are deployed into").
				Placeholder(DefaultNamespace).
				Value(&result.Namespace).
				Validate(ValidateNamespace),
			huh.NewSelect[string]().
				Title("Crypto Material Layout").
				Description("v2 keeps crypto material per organization, v1 at the volume root").
				Options(
					huh.NewOption("v2 (per organization)", "v2"),
					huh.NewOption("v1 (volume root)", "v1"),
				).
				Value(&result.Layout),
		).Title("Cluster"),
	).RunWithContext(ctx)
}

func runStorageGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Shared GlusterFS Storage").
				Description("Provision a GlusterFS backed volume shared by all nodes of the namespace?").
				Value(&result.EnableSharedStorage),
		).Title("Storage"),
	).RunWithContext(ctx)
	if err != nil || !result.EnableSharedStorage {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GlusterFS Hosts").
				Description("Comma-separated IP addresses of the GlusterFS servers").
				Placeholder("10.0.0.10, 10.0.0.11").
				Value(&result.GlusterHosts).
				Validate(validateHosts),
			huh.NewInput().
				Title("GlusterFS Volume").
				Placeholder("fabric").
				Value(&result.GlusterVolume).
				Validate(validateRequired("volume name")),
			huh.NewInput().
				Title("Capacity").
				Description("Kubernetes quantity, e.g. 100Gi").
				Value(&result.StorageCapacity).
				Validate(validateQuantity),
		).Title("GlusterFS"),
	).RunWithContext(ctx)
}

func runStateDBGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Peer State Database").
				Options(
					huh.NewOption("LevelDB (embedded)", "LevelDB"),
					huh.NewOption("CouchDB", "CouchDB"),
				).
				Value(&result.StateDBBackend),
		).Title("Ledger"),
	).RunWithContext(ctx)
	if err != nil || result.StateDBBackend != "CouchDB" {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CouchDB Address").
				Value(&result.StateDBAddress).
				Validate(validateRequired("address")),
			huh.NewInput().
				Title("CouchDB Username").
				Value(&result.StateDBUsername),
			huh.NewInput().
				Title("CouchDB Password").
				EchoMode(huh.EchoModePassword).
				Value(&result.StateDBPassword),
		).Title("CouchDB"),
	).RunWithContext(ctx)
}

func validateHosts(s string) error {
	hosts := splitHosts(s)
	if len(hosts) == 0 {
		return fmt.Errorf("at least one host is required")
	}
	for _, h := range hosts {
		if net.ParseIP(h) == nil {
			return fmt.Errorf("%q is not an IP address", h)
		}
	}
	return nil
}

func validateQuantity(s string) error {
	if _, err := resource.ParseQuantity(s); err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
