package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load.
const (
	EnvKubeconfig        = "KUBECONFIG"
	EnvNamespace         = "K8S_NAMESPACE"
	EnvGlusterHosts      = "GLUSTER_HOSTS"
	EnvGlusterVolume     = "GLUSTER_VOL_NAME"
	EnvGlusterSize       = "GLUSTER_STORAGE_SIZE"
	EnvImageCA           = "FABKUBE_IMAGE_CA"
	EnvImageOrderer      = "FABKUBE_IMAGE_ORDERER"
	EnvImagePeer         = "FABKUBE_IMAGE_PEER"
	EnvLayout            = "FABKUBE_LAYOUT"
	EnvStateDBBackend    = "FABKUBE_STATEDB_BACKEND"
	EnvStateDBAddress    = "FABKUBE_STATEDB_ADDRESS"
	EnvStateDBUsername   = "FABKUBE_STATEDB_USERNAME"
	EnvStateDBPassword   = "FABKUBE_STATEDB_PASSWORD"
	EnvOperationTimeout  = "FABKUBE_OPERATION_TIMEOUT"
	EnvRetryMaxAttempts  = "FABKUBE_RETRY_MAX_ATTEMPTS"
	EnvRetryInitialDelay = "FABKUBE_RETRY_INITIAL_DELAY"
)

// Load reads the configuration file at path, if any, applies environment
// overrides and defaults, and validates the result.
//
// An empty path skips the file; the configuration then comes from the
// environment and defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		// #nosec G304
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides file values with any environment variables that are set.
func (c *Config) applyEnv() {
	setString(&c.Kubeconfig, EnvKubeconfig)
	setString(&c.Namespace, EnvNamespace)
	if hosts := os.Getenv(EnvGlusterHosts); hosts != "" {
		c.SharedStorage.Hosts = splitHosts(hosts)
	}
	setString(&c.SharedStorage.Volume, EnvGlusterVolume)
	setString(&c.SharedStorage.Capacity, EnvGlusterSize)
	setString(&c.Images.CA, EnvImageCA)
	setString(&c.Images.Orderer, EnvImageOrderer)
	setString(&c.Images.Peer, EnvImagePeer)
	setString(&c.Layout, EnvLayout)
	setString(&c.StateDB.Backend, EnvStateDBBackend)
	setString(&c.StateDB.Address, EnvStateDBAddress)
	setString(&c.StateDB.Username, EnvStateDBUsername)
	setString(&c.StateDB.Password, EnvStateDBPassword)
	c.OperationTimeout = parseDuration(EnvOperationTimeout, c.OperationTimeout)
	c.Retry.MaxAttempts = parseInt(EnvRetryMaxAttempts, c.Retry.MaxAttempts)
	c.Retry.InitialDelay = parseDuration(EnvRetryInitialDelay, c.Retry.InitialDelay)
}

// splitHosts splits a comma separated host list, dropping blanks.
func splitHosts(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

func setString(dst *string, envVar string) {
	if val := os.Getenv(envVar); val != "" {
		*dst = val
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
