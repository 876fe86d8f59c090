package descriptor

import corev1 "k8s.io/api/core/v1"

// EnvVar is a single name/value environment entry.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VolumeMount mounts a sub path of a pod volume into the container.
type VolumeMount struct {
	MountPath string `json:"mountPath"`
	Name      string `json:"name"`
	SubPath   string `json:"subPath,omitempty"`
}

// Container describes the single container of a node deployment.
type Container struct {
	Name         string        `json:"name"`
	Image        string        `json:"image"`
	Ports        []int32       `json:"ports,omitempty"`
	Env          []EnvVar      `json:"env,omitempty"`
	Command      []string      `json:"command,omitempty"`
	Args         []string      `json:"args,omitempty"`
	VolumeMounts []VolumeMount `json:"volumeMounts,omitempty"`
}

// Volume is a pod volume backed by a PersistentVolumeClaim.
type Volume struct {
	Name      string `json:"name"`
	ClaimName string `json:"claimName"`
}

// Deployment describes a node Deployment. Labels is used verbatim as the
// object labels, the selector and the pod template labels.
type Deployment struct {
	Name           string            `json:"name"`
	Labels         map[string]string `json:"labels"`
	Volumes        []Volume          `json:"volumes,omitempty"`
	Containers     []Container       `json:"containers"`
	InitContainers []Container       `json:"initContainers,omitempty"`
}

// ServicePort is a named service port.
type ServicePort struct {
	Port int32  `json:"port"`
	Name string `json:"name"`
}

// Service describes the Service exposing a node.
type Service struct {
	Name     string             `json:"name"`
	Ports    []ServicePort      `json:"ports"`
	Selector map[string]string  `json:"selector"`
	Type     corev1.ServiceType `json:"type"`
}

// IngressPath routes a URL path to a service port.
type IngressPath struct {
	Path string `json:"path"`
	Port int32  `json:"port"`
}

// Ingress describes an ingress in front of a node service. Only a single
// rule with an empty host is generated.
type Ingress struct {
	Name        string            `json:"name"`
	ServiceName string            `json:"serviceName"`
	Paths       []IngressPath     `json:"paths,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}
