package testing

import (
	"slices"
	"time"

	"github.com/imamik/fabkube/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a ConfigBuilder holding every default, with a
// retry delay short enough for tests.
func NewConfigBuilder() *ConfigBuilder {
	cfg := config.Default()
	cfg.Retry.InitialDelay = time.Millisecond
	return &ConfigBuilder{cfg: *cfg}
}

// WithNamespace sets the target namespace.
func (b *ConfigBuilder) WithNamespace(namespace string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Namespace = namespace
	return newBuilder
}

// WithSharedStorage enables the GlusterFS chain on the given hosts with the
// volume "fabric-vol".
func (b *ConfigBuilder) WithSharedStorage(hosts ...string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.SharedStorage.Hosts = slices.Clone(hosts)
	newBuilder.cfg.SharedStorage.Volume = "fabric-vol"
	return newBuilder
}

// WithLayout sets the crypto material layout revision.
func (b *ConfigBuilder) WithLayout(revision string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Layout = revision
	return newBuilder
}

// WithCouchDB switches the peer state database to CouchDB.
func (b *ConfigBuilder) WithCouchDB(address string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.StateDB.Backend = "CouchDB"
	newBuilder.cfg.StateDB.Address = address
	return newBuilder
}

// WithRetry sets the maximum number of attempts of idempotent sequences.
func (b *ConfigBuilder) WithRetry(maxAttempts int) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Retry.MaxAttempts = maxAttempts
	return newBuilder
}

// Build returns the config.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.clone().cfg
	return &cfg
}

func (b *ConfigBuilder) clone() *ConfigBuilder {
	cfg := b.cfg
	cfg.SharedStorage.Hosts = slices.Clone(b.cfg.SharedStorage.Hosts)
	return &ConfigBuilder{cfg: cfg}
}
