// Package k8s builds client-go clientsets from kubeconfig files, kubeconfig
// bytes or the in-cluster service account, and waits for provisioned node
// workloads to become ready.
package k8s

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewClientset creates a clientset from a kubeconfig file.
//
// An empty path follows the client-go default loading rules (KUBECONFIG,
// then ~/.kube/config) and falls back to the in-cluster configuration when
// no kubeconfig is found.
func NewClientset(kubeconfigPath string) (kubernetes.Interface, error) {
	config, err := restConfig(kubeconfigPath)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return clientset, nil
}

// NewClientsetFromBytes creates a clientset from kubeconfig bytes.
func NewClientsetFromBytes(kubeconfigData []byte) (kubernetes.Interface, error) {
	config, err := clientcmd.RESTConfigFromKubeConfig(kubeconfigData)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig from bytes: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return clientset, nil
}

func restConfig(kubeconfigPath string) (*rest.Config, error) {
	if kubeconfigPath != "" {
		config, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
		}
		return config, nil
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err == nil {
		return config, nil
	}

	inCluster, inClusterErr := rest.InClusterConfig()
	if inClusterErr != nil {
		return nil, fmt.Errorf("failed to load kubeconfig (%v) or in-cluster config: %w", err, inClusterErr)
	}
	return inCluster, nil
}
