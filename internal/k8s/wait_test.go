package k8s

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/imamik/fabkube/internal/util/ptr"
)

func readyDeployment(name string) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "cello"},
		Spec:       appsv1.DeploymentSpec{Replicas: ptr.To(int32(1))},
		Status: appsv1.DeploymentStatus{
			Replicas:          1,
			UpdatedReplicas:   1,
			AvailableReplicas: 1,
			Conditions: []appsv1.DeploymentCondition{
				{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionTrue},
			},
		},
	}
}


func TestWaitForDeployment_Ready(t *testing.T) {
	t.Parallel()
	//nolint:staticcheck // SA1019: NewSimpleClientset is sufficient for our testing needs
	clientset := fake.NewSimpleClientset(readyDeployment("peer0"))

	err := WaitForDeployment(context.Background(), clientset, "cello", "peer0", 10*time.Millisecond, time.Second)
	require.NoError(t, err)
}

func TestWaitForDeployment_Timeout(t *testing.T) {
	t.Parallel()
	//nolint:staticcheck // SA1019: NewSimpleClientset is sufficient for our testing needs
	clientset := fake.NewSimpleClientset()

	err := WaitForDeployment(context.Background(), clientset, "cello", "missing", 10*time.Millisecond, 50*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment cello/missing not ready")
}

func TestIsDeploymentReady(t *testing.T) {
	t.Parallel()

	assert.True(t, isDeploymentReady(readyDeployment("ok")))

	noReplicas := readyDeployment("default-replicas")
	noReplicas.Spec.Replicas = nil
	assert.True(t, isDeploymentReady(noReplicas), "nil replicas defaults to one")

	unavailable := readyDeployment("unavailable")
	unavailable.Status.AvailableReplicas = 0
	assert.False(t, isDeploymentReady(unavailable))

	noCondition := readyDeployment("no-condition")
	noCondition.Status.Conditions = nil
	assert.False(t, isDeploymentReady(noCondition))
}
