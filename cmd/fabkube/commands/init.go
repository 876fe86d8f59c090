package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fabkube/cmd/fabkube/handlers"
)

// Init returns the command for interactively creating a configuration file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a fabkube configuration file.

The wizard asks for the target namespace, the crypto material layout,
the optional shared GlusterFS storage and the peer state database.
Anything not asked for keeps its default and can still be overridden
through the environment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "fabkube.yaml", "Output file path")

	return cmd
}
