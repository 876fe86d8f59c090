package testing

import (
	"context"
	"testing"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// NewFakeClientset returns a fake clientset seeded with objects.
func NewFakeClientset(objects ...runtime.Object) *fake.Clientset {
	return fake.NewSimpleClientset(objects...) //nolint:staticcheck // SA1019: NewSimpleClientset is sufficient for our testing needs
}

// CreateActions returns the resource of every create action recorded by
// clientset, in order.
func CreateActions(clientset *fake.Clientset) []string {
	var resources []string
	for _, action := range clientset.Actions() {
		if action.GetVerb() == "create" {
			resources = append(resources, action.GetResource().Resource)
		}
	}
	return resources
}
