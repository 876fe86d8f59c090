// Package descriptor holds the data-only descriptions of the Kubernetes
// resources that run a Fabric node, and their translation into typed
// k8s.io/api objects.
//
// Descriptors are produced by the fabric synthesizer and consumed by the
// provisioner. They carry no cluster state and are discarded after a single
// provisioning call. Object builders always set apiVersion and kind so the
// rendered objects can be printed as manifests as well as submitted through
// client-go.
package descriptor
