package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/imamik/fabkube/internal/descriptor"
	"github.com/imamik/fabkube/internal/util/labels"
)

func testDeployment() descriptor.Deployment {
	return descriptor.Deployment{
		Name:   "peer0",
		Labels: labels.App("node-1"),
		Containers: []descriptor.Container{
			{Name: "peer", Image: "hyperledger/fabric-peer:2.2", Ports: []int32{7051, 7052}},
		},
	}
}

func testService() descriptor.Service {
	return descriptor.Service{
		Name:     "peer0",
		Selector: labels.App("node-1"),
		Type:     corev1.ServiceTypeNodePort,
		Ports: []descriptor.ServicePort{
			{Port: 7051, Name: "server"},
			{Port: 7052, Name: "grpc"},
		},
	}
}

func TestCreateDeployment(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})
	ctx := context.Background()

	created, err := p.CreateDeployment(ctx, "cello", testDeployment())
	require.NoError(t, err)
	assert.Equal(t, "peer0", created.Name)
	assert.Equal(t, "cello", created.Namespace)
	assert.Equal(t, []string{"create deployments"}, verbs(clientset, ""))

	stored, err := clientset.AppsV1().Deployments("cello").Get(ctx, "peer0", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, labels.App("node-1"), stored.Spec.Selector.MatchLabels)
}

func TestCreateDeployment_AlreadyExists(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})
	ctx := context.Background()

	_, err := p.CreateDeployment(ctx, "cello", testDeployment())
	require.NoError(t, err)

	created, err := p.CreateDeployment(ctx, "cello", testDeployment())
	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, apierrors.IsAlreadyExists(err))
	assert.Contains(t, err.Error(), "create_deployment peer0")
}

func TestCreateService(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})

	created, err := p.CreateService(context.Background(), "cello", testService())
	require.NoError(t, err)
	assert.Equal(t, corev1.ServiceTypeNodePort, created.Spec.Type)
	assert.Equal(t, labels.App("node-1"), created.Spec.Selector)
	require.Len(t, created.Spec.Ports, 2)
	assert.Equal(t, "grpc", created.Spec.Ports[1].Name)
	assert.Equal(t, []string{"create services"}, verbs(clientset, ""))
}

func TestCreateService_Failure(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	clientset.PrependReactor("create", "services", failWith(errBoom))
	p := New(clientset, Options{})

	created, err := p.CreateService(context.Background(), "cello", testService())
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errBoom)
}

func TestCreateIngress(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})

	created, err := p.CreateIngress(context.Background(), "cello", descriptor.Ingress{
		Name:        "peer0",
		ServiceName: "peer0",
		Paths:       []descriptor.IngressPath{{Path: "/", Port: 7051}},
	})
	require.NoError(t, err)
	require.Len(t, created.Spec.Rules, 1)
	assert.Empty(t, created.Spec.Rules[0].Host)
	assert.Equal(t, []string{"create ingresses"}, verbs(clientset, ""))
}

func TestCreateIngress_AlreadyExists(t *testing.T) {
	t.Parallel()

	clientset := newFakeClientset()
	p := New(clientset, Options{})
	ctx := context.Background()
	ing := descriptor.Ingress{Name: "peer0", ServiceName: "peer0"}

	_, err := p.CreateIngress(ctx, "cello", ing)
	require.NoError(t, err)
	_, err = p.CreateIngress(ctx, "cello", ing)
	assert.True(t, apierrors.IsAlreadyExists(err))
}
