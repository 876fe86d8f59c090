package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fabkube/internal/config"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultNamespace, cfg.Namespace)
	assert.False(t, cfg.SharedStorage.Enabled())
}

func TestConfigBuilder_Immutable(t *testing.T) {
	base := NewConfigBuilder().WithSharedStorage("10.0.0.1")
	other := base.WithNamespace("fabric").WithSharedStorage("10.0.0.2")

	a := base.Build()
	b := other.Build()

	assert.Equal(t, "cello", a.Namespace)
	assert.Equal(t, []string{"10.0.0.1"}, a.SharedStorage.Hosts)
	assert.Equal(t, "fabric", b.Namespace)
	assert.Equal(t, []string{"10.0.0.2"}, b.SharedStorage.Hosts)

	a.SharedStorage.Hosts[0] = "mutated"
	assert.Equal(t, []string{"10.0.0.1"}, base.Build().SharedStorage.Hosts)
}

func TestConfigBuilder_Options(t *testing.T) {
	cfg := NewConfigBuilder().
		WithLayout("v1").
		WithCouchDB("couch:5984").
		WithRetry(5).
		Build()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "v1", cfg.Layout)
	assert.Equal(t, "CouchDB", cfg.StateDB.Backend)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
}

func TestFixtures_Valid(t *testing.T) {
	assert.NoError(t, CAIdentity().Validate("ca"))
	assert.NoError(t, OrdererIdentity().Validate("orderer"))
	assert.NoError(t, PeerIdentity().Validate("peer"))
}

func TestCreateActions(t *testing.T) {
	clientset := NewFakeClientset()
	assert.Empty(t, CreateActions(clientset))
}
