package descriptor

import (
	"maps"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/imamik/fabkube/internal/util/ptr"
)

// Object builds the apps/v1 Deployment for the descriptor in namespace.
func (d Deployment) Object(namespace string) *appsv1.Deployment {
	podSpec := corev1.PodSpec{
		Containers:     containers(d.Containers),
		InitContainers: containers(d.InitContainers),
	}
	for _, v := range d.Volumes {
		podSpec.Volumes = append(podSpec.Volumes, corev1.Volume{
			Name: v.Name,
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: v.ClaimName,
				},
			},
		})
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      d.Name,
			Namespace: namespace,
			Labels:    maps.Clone(d.Labels),
		},
		Spec: appsv1.DeploymentSpec{
			Selector: &metav1.LabelSelector{MatchLabels: maps.Clone(d.Labels)},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: maps.Clone(d.Labels)},
				Spec:       podSpec,
			},
		},
	}
}

// Object builds the v1 Service for the descriptor in namespace.
func (s Service) Object(namespace string) *corev1.Service {
	ports := make([]corev1.ServicePort, 0, len(s.Ports))
	for _, p := range s.Ports {
		ports = append(ports, corev1.ServicePort{
			Name:     p.Name,
			Port:     p.Port,
			Protocol: corev1.ProtocolTCP,
		})
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.Name,
			Namespace: namespace,
			Labels:    maps.Clone(s.Selector),
		},
		Spec: corev1.ServiceSpec{
			Ports:    ports,
			Selector: maps.Clone(s.Selector),
			Type:     s.Type,
		},
	}
}

// Object builds the networking.k8s.io/v1 Ingress for the descriptor in
// namespace. The rule has an empty host and one path per descriptor path.
func (i Ingress) Object(namespace string) *networkingv1.Ingress {
	paths := make([]networkingv1.HTTPIngressPath, 0, len(i.Paths))
	for _, p := range i.Paths {
		paths = append(paths, networkingv1.HTTPIngressPath{
			Path:     p.Path,
			PathType: ptr.To(networkingv1.PathTypeImplementationSpecific),
			Backend: networkingv1.IngressBackend{
				Service: &networkingv1.IngressServiceBackend{
					Name: i.ServiceName,
					Port: networkingv1.ServiceBackendPort{Number: p.Port},
				},
			},
		})
	}

	return &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{APIVersion: "networking.k8s.io/v1", Kind: "Ingress"},
		ObjectMeta: metav1.ObjectMeta{
			Name:        i.Name,
			Namespace:   namespace,
			Annotations: maps.Clone(i.Annotations),
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{
				Host: "",
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: paths},
				},
			}},
		},
	}
}

func containers(in []Container) []corev1.Container {
	if len(in) == 0 {
		return nil
	}
	out := make([]corev1.Container, 0, len(in))
	for _, c := range in {
		container := corev1.Container{
			Name:            c.Name,
			Image:           c.Image,
			Command:         c.Command,
			Args:            c.Args,
			ImagePullPolicy: corev1.PullIfNotPresent,
		}
		for _, p := range c.Ports {
			container.Ports = append(container.Ports, corev1.ContainerPort{ContainerPort: p})
		}
		for _, e := range c.Env {
			container.Env = append(container.Env, corev1.EnvVar{Name: e.Name, Value: e.Value})
		}
		for _, m := range c.VolumeMounts {
			container.VolumeMounts = append(container.VolumeMounts, corev1.VolumeMount{
				Name:      m.Name,
				MountPath: m.MountPath,
				SubPath:   m.SubPath,
			})
		}
		out = append(out, container)
	}
	return out
}
