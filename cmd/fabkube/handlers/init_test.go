package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fabkube/internal/config"
)

func stubInit(t *testing.T) {
	t.Helper()
	origExists := fileExists
	origWizard := runWizard
	origSave := saveConfig
	t.Cleanup(func() {
		fileExists = origExists
		runWizard = origWizard
		saveConfig = origSave
	})
}

func TestInit(t *testing.T) {
	stubInit(t)

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			Namespace:           "fabric",
			Layout:              "v2",
			EnableSharedStorage: true,
			GlusterHosts:        "10.0.0.1",
			GlusterVolume:       "vol",
			StorageCapacity:     "10Gi",
		}, nil
	}
	var saved *config.Config
	var savedPath string
	saveConfig = func(cfg *config.Config, path string) error {
		saved, savedPath = cfg, path
		return nil
	}

	var out bytes.Buffer
	require.NoError(t, Init(context.Background(), "fabkube.yaml", &out))

	assert.Equal(t, "fabkube.yaml", savedPath)
	require.NotNil(t, saved)
	assert.Equal(t, "fabric", saved.Namespace)
	assert.Contains(t, out.String(), "Configuration saved")
	assert.Contains(t, out.String(), "glusterfs vol on 10.0.0.1")
	assert.NotContains(t, out.String(), "Warning")
}

func TestInit_ExistingFile(t *testing.T) {
	stubInit(t)

	fileExists = func(_ string) bool { return true }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{Namespace: "cello", Layout: "v2"}, nil
	}
	saveConfig = func(_ *config.Config, _ string) error { return nil }

	var out bytes.Buffer
	require.NoError(t, Init(context.Background(), "fabkube.yaml", &out))
	assert.Contains(t, out.String(), "Warning: fabkube.yaml already exists")
}

func TestInit_WizardCanceled(t *testing.T) {
	stubInit(t)

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return nil, errors.New("user aborted")
	}
	saveConfig = func(_ *config.Config, _ string) error {
		t.Fatal("save must not be called")
		return nil
	}

	err := Init(context.Background(), "fabkube.yaml", &bytes.Buffer{})
	assert.EqualError(t, err, "wizard canceled: user aborted")
}
