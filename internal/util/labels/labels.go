package labels

import "maps"

// Label keys.
const (
	// KeyApp selects the pods of a single Fabric node.
	KeyApp = "app"

	// KeyStorageName identifies the storage backend of the shared volume chain
	KeyStorageName = "storage.k8s.io/name"

	// KeyStoragePartOf groups the shared volume chain objects
	KeyStoragePartOf = "storage.k8s.io/part-of"
)

// Label values for the shared storage chain.
const (
	StorageNameGlusterFS = "glusterfs"
	StoragePartOf        = "kubernetes-complete-reference"
)

// LabelBuilder provides a fluent interface for building label sets.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates an empty label builder.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{labels: map[string]string{}}
}

// WithApp sets the app label to the given node id.
func (lb *LabelBuilder) WithApp(nodeID string) *LabelBuilder {
	lb.labels[KeyApp] = nodeID
	return lb
}

// WithSharedStorage adds the labels of the shared storage chain.
func (lb *LabelBuilder) WithSharedStorage() *LabelBuilder {
	lb.labels[KeyStorageName] = StorageNameGlusterFS
	lb.labels[KeyStoragePartOf] = StoragePartOf
	return lb
}

// Build returns a copy of the accumulated labels.
func (lb *LabelBuilder) Build() map[string]string {
	return maps.Clone(lb.labels)
}

// App returns the single-entry label set that selects a node's pods.
func App(nodeID string) map[string]string {
	return NewLabelBuilder().WithApp(nodeID).Build()
}

// SharedStorage returns the label set of the shared storage chain.
func SharedStorage() map[string]string {
	return NewLabelBuilder().WithSharedStorage().Build()
}
