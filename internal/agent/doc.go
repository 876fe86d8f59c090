// Package agent runs the node provisioning flow: synthesize the node's
// resources, make sure its namespace and shared storage exist, then create
// the deployment and the service. Teardown deletes the node's workloads.
package agent
