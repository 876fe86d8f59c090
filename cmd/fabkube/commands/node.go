package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fabkube/cmd/fabkube/handlers"
)

// Node returns the node command group.
func Node() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Render, create or delete Fabric nodes",
	}

	cmd.AddCommand(nodeRender())
	cmd.AddCommand(nodeCreate())
	cmd.AddCommand(nodeDelete())

	return cmd
}

// bindNodeFlags registers the flags describing a node identity.
func bindNodeFlags(cmd *cobra.Command, req *handlers.NodeRequest) {
	cmd.Flags().StringVarP(&req.Type, "type", "t", "", "Node type: ca, orderer or peer (required)")
	cmd.Flags().StringVar(&req.ID, "id", "", "Node id, used as the app label (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Node name, used for the deployment and service (required)")
	cmd.Flags().StringVar(&req.Org, "org", "", "Organization name, e.g. org1.example.com")
	cmd.Flags().StringVar(&req.Network, "network", "", "Network name")
	cmd.Flags().StringVar(&req.Version, "version", "", "Fabric image tag (required)")
	cmd.Flags().StringVar(&req.AgentID, "agent-id", "", "Agent id")
	cmd.Flags().StringVarP(&req.Namespace, "namespace", "n", "", "Target namespace (default from configuration)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("version")
}

func nodeRender() *cobra.Command {
	var req handlers.NodeRequest

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the manifests of a node without contacting a cluster",
		Long: `Render synthesizes the deployment and service of a node and prints
them as a multi-document YAML manifest.

Example:
  fabkube node render -t peer --id 3f1c --name peer0 --org org1.example.com \
    --network net1 --version 2.2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.NodeRender(cmd.Context(), globals, req, cmd.OutOrStdout())
		},
	}

	bindNodeFlags(cmd, &req)
	return cmd
}

func nodeCreate() *cobra.Command {
	var (
		req  handlers.NodeRequest
		wait bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a node in the cluster",
		Long: `Create makes sure the namespace (and shared storage, when configured)
exists, then creates the node's deployment and service.

Creating the same node twice fails: delete it first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.NodeCreate(cmd.Context(), globals, req, wait, cmd.OutOrStdout())
		},
	}

	bindNodeFlags(cmd, &req)
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the node deployment to become ready")
	return cmd
}

func nodeDelete() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a node's deployment, service and ingress",
		Long: `Delete removes the workloads of a node. Missing objects are not an
error; failures are logged and the command still succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.NodeDelete(cmd.Context(), globals, namespace, args[0])
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace (default from configuration)")
	return cmd
}
