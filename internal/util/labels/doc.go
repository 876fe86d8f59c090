// Package labels provides the label keys and label sets stamped on
// provisioned Kubernetes objects.
//
// Node workloads carry exactly one label, app=<node id>, which is also the
// deployment selector and the service selector. The shared storage chain
// carries the storage.k8s.io labels so it can be found independently of
// any node.
package labels
