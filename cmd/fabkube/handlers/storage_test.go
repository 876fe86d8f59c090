package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	k8stesting "k8s.io/client-go/testing"

	fabtest "github.com/imamik/fabkube/internal/testing"
)

func countCreates(actions []k8stesting.Action, resource string) int {
	n := 0
	for _, a := range actions {
		if a.GetVerb() == "create" && a.GetResource().Resource == resource {
			n++
		}
	}
	return n
}

func TestStorageEnsure_NotConfigured(t *testing.T) {
	clientset := stubCluster(t, testConfig())

	err := StorageEnsure(context.Background(), Globals{}, "")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
	assert.Empty(t, clientset.Actions())
}

func TestStorageEnsure(t *testing.T) {
	clientset := stubCluster(t, storageConfig())
	ctx := context.Background()

	require.NoError(t, StorageEnsure(ctx, Globals{}, "fabric"))

	_, err := clientset.CoreV1().PersistentVolumes().Get(ctx, "pv-fabric", metav1.GetOptions{})
	require.NoError(t, err)
	_, err = clientset.CoreV1().PersistentVolumeClaims("fabric").Get(ctx, "pvc-data", metav1.GetOptions{})
	require.NoError(t, err)
}

func TestStorageEnsure_RetriesTransientFailure(t *testing.T) {
	clientset := stubCluster(t, storageConfig())

	failures := 1
	clientset.PrependReactor("create", "services", func(_ k8stesting.Action) (bool, runtime.Object, error) {
		if failures > 0 {
			failures--
			return true, nil, apierrors.NewServiceUnavailable("apiserver restarting")
		}
		return false, nil, nil
	})

	require.NoError(t, StorageEnsure(context.Background(), Globals{}, ""))

	actions := clientset.Actions()
	assert.Equal(t, 1, countCreates(actions, "persistentvolumes"), "the volume is not created again")
	assert.Equal(t, 2, countCreates(actions, "services"))
	assert.Equal(t, 1, countCreates(actions, "persistentvolumeclaims"))
}

func TestStorageEnsure_PermanentFailureIsNotRetried(t *testing.T) {
	clientset := stubCluster(t, storageConfig())
	clientset.PrependReactor("create", "services", func(_ k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewForbidden(schema.GroupResource{Resource: "services"}, "glusterfs", errors.New("rbac"))
	})

	err := StorageEnsure(context.Background(), Globals{}, "")
	require.Error(t, err)
	assert.True(t, apierrors.IsForbidden(err))
	assert.Equal(t, 1, countCreates(clientset.Actions(), "services"))
}

func TestStorageEnsure_GivesUpAfterMaxAttempts(t *testing.T) {
	clientset := stubCluster(t, fabtest.NewConfigBuilder().WithSharedStorage("10.0.0.1").WithRetry(2).Build())
	clientset.PrependReactor("create", "persistentvolumes", func(_ k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewTooManyRequests("slow down", 0)
	})

	err := StorageEnsure(context.Background(), Globals{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, 2, countCreates(clientset.Actions(), "persistentvolumes"))
}

func TestIsTransient(t *testing.T) {
	gr := schema.GroupResource{Resource: "services"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"service unavailable", apierrors.NewServiceUnavailable("x"), true},
		{"too many requests", apierrors.NewTooManyRequests("x", 1), true},
		{"server timeout", apierrors.NewServerTimeout(gr, "create", 1), true},
		{"internal error", apierrors.NewInternalError(errors.New("x")), true},
		{"already exists", apierrors.NewAlreadyExists(gr, "glusterfs"), true},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), true},
		{"connection refused", &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED}, true},
		{"forbidden", apierrors.NewForbidden(gr, "glusterfs", errors.New("x")), false},
		{"invalid", apierrors.NewBadRequest("x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}

func TestNamespaceEnsure(t *testing.T) {
	clientset := stubCluster(t, storageConfig())
	ctx := context.Background()

	require.NoError(t, NamespaceEnsure(ctx, Globals{}, ""))

	_, err := clientset.CoreV1().Namespaces().Get(ctx, "cello", metav1.GetOptions{})
	require.NoError(t, err)
	_, err = clientset.CoreV1().PersistentVolumes().Get(ctx, "pv-cello", metav1.GetOptions{})
	require.NoError(t, err)
}

func TestNamespaceEnsure_InvalidOverride(t *testing.T) {
	clientset := stubCluster(t, storageConfig())

	err := NamespaceEnsure(context.Background(), Globals{}, "-fabric")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `namespace "-fabric" is invalid`)

	err = StorageEnsure(context.Background(), Globals{}, "-fabric")
	require.Error(t, err)
	assert.Empty(t, clientset.Actions())
}

func TestNamespaceEnsure_StorageFailure(t *testing.T) {
	clientset := stubCluster(t, storageConfig())
	clientset.PrependReactor("create", "endpoints", func(_ k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("boom")
	})

	err := NamespaceEnsure(context.Background(), Globals{}, "fabric")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure namespace fabric")
}

func TestMetricsFile(t *testing.T) {
	stubCluster(t, testConfig())
	path := filepath.Join(t.TempDir(), "fabkube.prom")

	require.NoError(t, NamespaceEnsure(context.Background(), Globals{MetricsFile: path}, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fabkube_provisioner_operations_total")
	assert.Contains(t, string(data), `operation="ensure_namespace"`)
}

func TestFlushMetrics_ErrorIsLogged(t *testing.T) {
	orig := writeMetrics
	t.Cleanup(func() { writeMetrics = orig })

	called := false
	writeMetrics = func(_ string) error {
		called = true
		return errors.New("read-only file system")
	}

	flushMetrics(context.Background(), Globals{})
	assert.False(t, called)

	flushMetrics(context.Background(), Globals{MetricsFile: "/nope"})
	assert.True(t, called)
}
