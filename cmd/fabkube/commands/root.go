// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/cmd/fabkube/handlers"
)

// globals holds the persistent flags of the root command.
var globals handlers.Globals

// Root returns the root command for the fabkube CLI.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "fabkube",
		Short:         "Provision Hyperledger Fabric nodes on Kubernetes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			terminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
			logger := newLogger(os.Stderr, verbose, terminal)
			log.SetLogger(logger)
			cmd.SetContext(log.IntoContext(cmd.Context(), logger))
		},
	}

	cmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", "", "Path to configuration file (optional, environment overrides apply)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&globals.MetricsFile, "metrics-file", "", "Write provisioning metrics to this file in Prometheus text format")

	cmd.AddCommand(Init())
	cmd.AddCommand(Node())
	cmd.AddCommand(Namespace())
	cmd.AddCommand(Storage())
	cmd.AddCommand(Version())

	return cmd
}
