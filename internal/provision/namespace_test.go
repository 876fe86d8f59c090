package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/imamik/fabkube/internal/config"
)

func TestEnsureNamespace_CreatesOnce(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})
	ctx := context.Background()

	require.NoError(t, p.EnsureNamespace(ctx, "cello"))
	require.NoError(t, p.EnsureNamespace(ctx, "cello"))

	assert.Equal(t, []string{"create namespaces"}, verbs(clientset, "create"))

	ns, err := clientset.CoreV1().Namespaces().Get(ctx, "cello", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Namespace", ns.Kind)
	assert.Equal(t, "v1", ns.APIVersion)
}

func TestEnsureNamespace_CreateFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	clientset.PrependReactor("create", "namespaces", failWith(errBoom))
	p := New(clientset, Options{})

	var sink logSink
	err := p.EnsureNamespace(sink.context(context.Background()), "cello")
	require.NoError(t, err)

	assert.True(t, sink.contains("operation failed, continuing"))
	assert.True(t, sink.contains("boom"))
}

func TestEnsureNamespace_StorageRunsWhenNamespaceExists(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset(&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "cello"}})
	p := New(clientset, Options{SharedStorage: testStorage()})

	require.NoError(t, p.EnsureNamespace(context.Background(), "cello"))

	assert.Equal(t, []string{
		"create persistentvolumes",
		"create services",
		"create endpoints",
		"create persistentvolumeclaims",
	}, verbs(clientset, "create"))
}

func TestEnsureNamespace_StorageRunsAfterCreate(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{SharedStorage: testStorage()})

	require.NoError(t, p.EnsureNamespace(context.Background(), "cello"))

	creates := verbs(clientset, "create")
	require.Len(t, creates, 5)
	assert.Equal(t, "create namespaces", creates[0])
}

func TestEnsureNamespace_ReadErrorStillRunsStorage(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	clientset.PrependReactor("get", "namespaces", failWith(errBoom))
	p := New(clientset, Options{SharedStorage: testStorage()})

	require.NoError(t, p.EnsureNamespace(context.Background(), "cello"))

	creates := verbs(clientset, "create")
	assert.NotContains(t, creates, "create namespaces")
	assert.Contains(t, creates, "create persistentvolumeclaims")
}

func TestEnsureNamespace_StorageErrorIsReturned(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	clientset.PrependReactor("create", "persistentvolumes", failWith(errBoom))
	p := New(clientset, Options{SharedStorage: testStorage()})

	err := p.EnsureNamespace(context.Background(), "cello")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestEnsureNamespace_StorageDisabledWithoutVolume(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{SharedStorage: config.SharedStorage{
		Hosts:    []string{"10.0.0.1"},
		Capacity: "1Gi",
	}})

	require.NoError(t, p.EnsureNamespace(context.Background(), "cello"))
	assert.Equal(t, []string{"create namespaces"}, verbs(clientset, "create"))
}
