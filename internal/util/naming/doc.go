// Package naming provides the fixed resource names shared between the node
// synthesizer and the cluster provisioner.
//
// The shared storage chain uses one PersistentVolume per namespace,
// pv-{namespace}, and fixed names inside the namespace: the glusterfs
// Service/Endpoints pair and the pvc-data claim. Every node deployment
// mounts that claim as the volume named data.
package naming
