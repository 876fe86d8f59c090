// Package config defines the runtime configuration of the node provisioner.
//
// Configuration is read from an optional YAML file and then overridden by
// environment variables, so that a deployment can be driven entirely from
// its environment (K8S_NAMESPACE, GLUSTER_HOSTS, GLUSTER_VOL_NAME,
// GLUSTER_STORAGE_SIZE, ...). The shared GlusterFS storage chain is only
// provisioned when both the host list and the volume name are set.
package config
