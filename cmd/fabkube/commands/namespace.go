package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fabkube/cmd/fabkube/handlers"
)

// Namespace returns the namespace command group.
func Namespace() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Manage the node namespace",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ensure [NAME]",
		Short: "Create the namespace and its shared storage if missing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.NamespaceEnsure(cmd.Context(), globals, firstArg(args))
		},
	})

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
