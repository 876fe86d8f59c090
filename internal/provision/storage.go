package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/util/labels"
	"github.com/imamik/fabkube/internal/util/naming"
	"github.com/imamik/fabkube/internal/util/ptr"
)

// glusterPort is a placeholder. The in-tree glusterfs plugin only reads the
// endpoint addresses, but Service and Endpoints both require a port.
const glusterPort = 1

// storageStep is one read-then-create step of the shared storage chain.
type storageStep struct {
	op     Operation
	name   string
	get    func(ctx context.Context) error
	create func(ctx context.Context) error
}

// EnsureSharedStorage makes sure the GlusterFS backed volume chain exists in
// namespace: PersistentVolume, Service, Endpoints, then the claim mounted by
// every node. Steps run strictly in that order. The first failing step
// aborts the chain and is returned; completed steps are left in place, so a
// later call resumes at the first missing object.
func (p *Provisioner) EnsureSharedStorage(ctx context.Context, namespace string) error {
	capacity, err := p.storage.CapacityQuantity()
	if err != nil {
		return fmt.Errorf("invalid shared storage: %w", err)
	}

	core := p.clientset.CoreV1()
	pvName := naming.PersistentVolume(namespace)

	steps := []storageStep{
		{
			op:   OpEnsurePersistentVolume,
			name: pvName,
			get: func(ctx context.Context) error {
				_, err := core.PersistentVolumes().Get(ctx, pvName, metav1.GetOptions{})
				return err
			},
			create: func(ctx context.Context) error {
				_, err := core.PersistentVolumes().Create(ctx, persistentVolume(pvName, p.storage.Volume, capacity), metav1.CreateOptions{})
				return err
			},
		},
		{
			op:   OpEnsureStorageService,
			name: naming.GlusterFSEndpoint,
			get: func(ctx context.Context) error {
				_, err := core.Services(namespace).Get(ctx, naming.GlusterFSEndpoint, metav1.GetOptions{})
				return err
			},
			create: func(ctx context.Context) error {
				_, err := core.Services(namespace).Create(ctx, storageService(namespace), metav1.CreateOptions{})
				return err
			},
		},
		{
			op:   OpEnsureStorageEndpoints,
			name: naming.GlusterFSEndpoint,
			get: func(ctx context.Context) error {
				_, err := core.Endpoints(namespace).Get(ctx, naming.GlusterFSEndpoint, metav1.GetOptions{}) //nolint:staticcheck // SA1019: the glusterfs volume plugin resolves hosts through Endpoints
				return err
			},
			create: func(ctx context.Context) error {
				_, err := core.Endpoints(namespace).Create(ctx, storageEndpoints(namespace, p.storage.Hosts), metav1.CreateOptions{}) //nolint:staticcheck // SA1019: the glusterfs volume plugin resolves hosts through Endpoints
				return err
			},
		},
		{
			op:   OpEnsureClaim,
			name: naming.DataClaim,
			get: func(ctx context.Context) error {
				_, err := core.PersistentVolumeClaims(namespace).Get(ctx, naming.DataClaim, metav1.GetOptions{})
				return err
			},
			create: func(ctx context.Context) error {
				_, err := core.PersistentVolumeClaims(namespace).Create(ctx, dataClaim(namespace, pvName, capacity), metav1.CreateOptions{})
				return err
			},
		},
	}

	logger := log.FromContext(ctx).WithValues("namespace", namespace)
	for _, step := range steps {
		if err := p.ensure(ctx, step); err != nil {
			return err
		}
	}
	logger.V(1).Info("shared storage ready", "persistentVolume", pvName, "claim", naming.DataClaim)
	return nil
}

func (p *Provisioner) ensure(ctx context.Context, step storageStep) error {
	logger := log.FromContext(ctx).WithValues("kind", step.op.Kind(), "name", step.name)
	start := time.Now()

	err := step.get(ctx)
	if err == nil {
		logger.V(1).Info("object already exists")
		p.record(step.op, resultExists, start)
		return nil
	}
	if !apierrors.IsNotFound(err) {
		p.record(step.op, resultFailed, start)
		return p.settle(ctx, step.op, step.name, fmt.Errorf("failed to get %s: %w", step.op.Kind(), err))
	}

	if err := step.create(ctx); err != nil {
		p.record(step.op, resultFailed, start)
		return p.settle(ctx, step.op, step.name, fmt.Errorf("failed to create %s: %w", step.op.Kind(), err))
	}

	p.record(step.op, resultCreated, start)
	logger.Info("created object")
	return nil
}

func persistentVolume(name, volume string, capacity resource.Quantity) *corev1.PersistentVolume {
	return &corev1.PersistentVolume{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "PersistentVolume",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: labels.SharedStorage(),
		},
		Spec: corev1.PersistentVolumeSpec{
			Capacity: corev1.ResourceList{
				corev1.ResourceStorage: capacity,
			},
			AccessModes:                   []corev1.PersistentVolumeAccessMode{corev1.ReadWriteMany},
			PersistentVolumeReclaimPolicy: corev1.PersistentVolumeReclaimRetain,
			VolumeMode:                    ptr.To(corev1.PersistentVolumeFilesystem),
			PersistentVolumeSource: corev1.PersistentVolumeSource{
				Glusterfs: &corev1.GlusterfsPersistentVolumeSource{ //nolint:staticcheck // SA1019: glusterfs is the shared volume backend
					EndpointsName: naming.GlusterFSEndpoint,
					Path:          volume,
				},
			},
		},
	}
}

func storageService(namespace string) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.GlusterFSEndpoint,
			Namespace: namespace,
			Labels:    labels.SharedStorage(),
		},
		Spec: corev1.ServiceSpec{
			Type: corev1.ServiceTypeClusterIP,
			Ports: []corev1.ServicePort{
				{
					Port:       glusterPort,
					TargetPort: intstr.FromInt32(glusterPort),
					Protocol:   corev1.ProtocolTCP,
				},
			},
		},
	}
}

//nolint:staticcheck // SA1019: the glusterfs volume plugin resolves hosts through Endpoints
func storageEndpoints(namespace string, hosts []string) *corev1.Endpoints {
	addresses := make([]corev1.EndpointAddress, 0, len(hosts))
	for _, host := range hosts {
		addresses = append(addresses, corev1.EndpointAddress{IP: host})
	}

	return &corev1.Endpoints{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Endpoints",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.GlusterFSEndpoint,
			Namespace: namespace,
			Labels:    labels.SharedStorage(),
		},
		Subsets: []corev1.EndpointSubset{
			{
				Addresses: addresses,
				Ports: []corev1.EndpointPort{
					{Port: glusterPort, Protocol: corev1.ProtocolTCP},
				},
			},
		},
	}
}

// dataClaim binds statically to the named volume. The empty storage class
// keeps a default provisioner from creating a volume of its own.
func dataClaim(namespace, volumeName string, capacity resource.Quantity) *corev1.PersistentVolumeClaim {
	return &corev1.PersistentVolumeClaim{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "PersistentVolumeClaim",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.DataClaim,
			Namespace: namespace,
			Labels:    labels.SharedStorage(),
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteMany},
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: capacity,
				},
			},
			VolumeName:       volumeName,
			VolumeMode:       ptr.To(corev1.PersistentVolumeFilesystem),
			StorageClassName: ptr.To(""),
		},
	}
}
