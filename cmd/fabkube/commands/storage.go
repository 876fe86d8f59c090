package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fabkube/cmd/fabkube/handlers"
)

// Storage returns the storage command group.
func Storage() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage the shared GlusterFS storage",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ensure [NAMESPACE]",
		Short: "Create the shared storage chain, resuming a partial one",
		Long: `Ensure creates the PersistentVolume, the glusterfs Service and
Endpoints, and the data claim of a namespace. Objects that already exist
are kept. Transient API errors are retried with exponential backoff.

Requires GLUSTER_HOSTS and GLUSTER_VOL_NAME (or shared_storage in the
configuration file).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.StorageEnsure(cmd.Context(), globals, firstArg(args))
		},
	})

	return cmd
}
