package naming

import "fmt"

// Names of the shared storage chain.
const (
	GlusterFSEndpoint = "glusterfs"
	DataClaim         = "pvc-data"
	DataVolume        = "data"
)

func PersistentVolume(namespace string) string {
	return fmt.Sprintf("pv-%s", namespace)
}

// Deployment and Service of a node are both named after the node.

func Deployment(nodeName string) string {
	return nodeName
}

func Service(nodeName string) string {
	return nodeName
}
