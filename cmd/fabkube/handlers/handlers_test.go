package handlers

import (
	"testing"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/imamik/fabkube/internal/config"
	fabtest "github.com/imamik/fabkube/internal/testing"
)

// stubCluster replaces the configuration loader and the clientset factory
// for the duration of a test.
func stubCluster(t *testing.T, cfg *config.Config) *fake.Clientset {
	t.Helper()

	origLoad := loadConfig
	origClientset := newClientset
	origWait := waitForDeployment
	t.Cleanup(func() {
		loadConfig = origLoad
		newClientset = origClientset
		waitForDeployment = origWait
	})

	clientset := fabtest.NewFakeClientset()
	loadConfig = func(_ string) (*config.Config, error) { return cfg, nil }
	newClientset = func(_ string) (kubernetes.Interface, error) { return clientset, nil }
	return clientset
}

func testConfig() *config.Config {
	return fabtest.NewConfigBuilder().Build()
}

func storageConfig() *config.Config {
	return fabtest.NewConfigBuilder().WithSharedStorage("10.0.0.1").Build()
}

func peerRequest() NodeRequest {
	id := fabtest.PeerIdentity()
	return NodeRequest{
		Type:    "peer",
		ID:      id.NodeID,
		Name:    id.NodeName,
		Org:     id.OrgName,
		Network: id.NetworkName,
		Version: id.Version,
	}
}
