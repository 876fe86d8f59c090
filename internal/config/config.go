package config

import "time"

// Defaults.
const (
	DefaultNamespace        = "cello"
	DefaultStorageCapacity  = "100Gi"
	DefaultLayout           = "v2"
	DefaultStateDBBackend   = "LevelDB"
	DefaultStateDBAddress   = "couchdb:5984"
	DefaultOperationTimeout = 30 * time.Second
	DefaultRetryMaxAttempts = 3
	DefaultRetryDelay       = 1 * time.Second
)

// Config is the complete provisioner configuration.
type Config struct {
	// Kubeconfig is the path of the kubeconfig file. Empty uses the
	// client-go default loading rules, then in-cluster configuration.
	Kubeconfig string `yaml:"kubeconfig,omitempty"`

	// Namespace is the namespace nodes are provisioned into by default.
	Namespace string `yaml:"namespace,omitempty"`

	SharedStorage SharedStorage `yaml:"shared_storage,omitempty"`
	Images        Images        `yaml:"images,omitempty"`

	// Layout is the crypto material layout revision, v1 or v2.
	Layout string `yaml:"layout,omitempty"`

	StateDB StateDB `yaml:"state_db,omitempty"`

	// OperationTimeout bounds each provisioning call made by the CLI.
	OperationTimeout time.Duration `yaml:"operation_timeout,omitempty"`

	Retry Retry `yaml:"retry,omitempty"`
}

// SharedStorage configures the GlusterFS backed volume shared by all nodes
// of a namespace.
type SharedStorage struct {
	Hosts    []string `yaml:"hosts,omitempty"`
	Volume   string   `yaml:"volume,omitempty"`
	Capacity string   `yaml:"capacity,omitempty"`
}

// Enabled reports whether the shared storage chain should be provisioned.
func (s SharedStorage) Enabled() bool {
	return len(s.Hosts) > 0 && s.Volume != ""
}

// Images overrides the image repositories of each node type.
type Images struct {
	CA      string `yaml:"ca,omitempty"`
	Orderer string `yaml:"orderer,omitempty"`
	Peer    string `yaml:"peer,omitempty"`
}

// StateDB configures the peer ledger state database.
type StateDB struct {
	Backend  string `yaml:"backend,omitempty"`
	Address  string `yaml:"address,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Retry configures caller-side retries of idempotent sequences.
type Retry struct {
	MaxAttempts  int           `yaml:"max_attempts,omitempty"`
	InitialDelay time.Duration `yaml:"initial_delay,omitempty"`
}

// Default returns a configuration holding every default value.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.SharedStorage.Capacity == "" {
		c.SharedStorage.Capacity = DefaultStorageCapacity
	}
	if c.Layout == "" {
		c.Layout = DefaultLayout
	}
	if c.StateDB.Backend == "" {
		c.StateDB.Backend = DefaultStateDBBackend
	}
	if c.StateDB.Address == "" {
		c.StateDB.Address = DefaultStateDBAddress
	}
	if c.OperationTimeout == 0 {
		c.OperationTimeout = DefaultOperationTimeout
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = DefaultRetryMaxAttempts
	}
	if c.Retry.InitialDelay == 0 {
		c.Retry.InitialDelay = DefaultRetryDelay
	}
}
