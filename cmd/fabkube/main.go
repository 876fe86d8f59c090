// Package main is the entry point for the fabkube CLI.
//
// fabkube provisions Hyperledger Fabric nodes (CA, orderer, peer) into a
// Kubernetes cluster: it synthesizes each node's deployment and service,
// makes sure the namespace and its shared GlusterFS volume exist, and
// creates the workloads.
//
// Commands: init, node render|create|delete, namespace ensure,
// storage ensure, version.
//
// For detailed usage information, run:
//
//	fabkube --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/fabkube/cmd/fabkube/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
