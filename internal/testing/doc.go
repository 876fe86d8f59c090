// Package testing provides test utilities, builders, and fixtures shared by
// the unit tests of several packages:
//   - ConfigBuilder: fluent builder for provisioner configurations
//   - CAIdentity, OrdererIdentity, PeerIdentity: node identity fixtures
//   - NewFakeClientset, CreateActions: fake control plane helpers
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithNamespace("fabric").
//	    WithSharedStorage("10.0.0.1").
//	    Build()
//
//	clientset := testing.NewFakeClientset()
package testing
