package config

import (
	"fmt"
	"net"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/validation"
)

var validStateDBBackends = map[string]bool{
	"LevelDB": true,
	"CouchDB": true,
}

var validLayouts = map[string]bool{
	"v1": true,
	"v2": true,
}

// ValidateNamespace checks that name is a valid namespace name (DNS-1123 label).
func ValidateNamespace(name string) error {
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("namespace %q is invalid: %s", name, strings.Join(errs, "; "))
	}
	return nil
}

// Validate checks the configuration for common errors and returns a detailed error if validation fails.
func (c *Config) Validate() error {
	if err := ValidateNamespace(c.Namespace); err != nil {
		return err
	}

	if err := c.SharedStorage.validate(); err != nil {
		return fmt.Errorf("shared_storage: %w", err)
	}

	if !validLayouts[strings.ToLower(c.Layout)] {
		return fmt.Errorf("layout %q is invalid (want v1 or v2)", c.Layout)
	}

	if !validStateDBBackends[c.StateDB.Backend] {
		return fmt.Errorf("state_db.backend %q is invalid (want LevelDB or CouchDB)", c.StateDB.Backend)
	}

	if c.OperationTimeout <= 0 {
		return fmt.Errorf("operation_timeout must be positive, got %s", c.OperationTimeout)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}

	return nil
}

func (s SharedStorage) validate() error {
	if len(s.Hosts) > 0 && s.Volume == "" {
		return fmt.Errorf("volume is required when hosts are set")
	}
	if s.Volume != "" && len(s.Hosts) == 0 {
		return fmt.Errorf("hosts are required when volume is set")
	}

	// Endpoints addresses must be IPs, hostnames are rejected by the API server.
	for _, h := range s.Hosts {
		if net.ParseIP(h) == nil {
			return fmt.Errorf("host %q is not an IP address", h)
		}
	}

	if _, err := s.CapacityQuantity(); err != nil {
		return err
	}

	return nil
}

// CapacityQuantity parses the storage capacity.
func (s SharedStorage) CapacityQuantity() (resource.Quantity, error) {
	q, err := resource.ParseQuantity(s.Capacity)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("capacity %q is invalid: %w", s.Capacity, err)
	}
	return q, nil
}
