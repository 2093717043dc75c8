// Package cmd implements the interactive menu front end: a thin text loop
// that prompts for a command and its arguments, invokes the corresponding
// engine operation, and prints either the result or the error message.
// The engine never prints; rendering failures is this package's job.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/seed"
)

var (
	verbose    bool
	undirected bool
	seedPath   string
)

// Execute is the entry point to running the CLI.
func Execute(version string) {
	rootCmd := &cobra.Command{
		Use:          "trafficgraph",
		Short:        "Interactively build and query a road network of intersections and streets.",
		Args:         cobra.NoArgs,
		RunE:         runMenu,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&undirected, "undirected", "u", false, "treat every street as two-way")
	rootCmd.Flags().StringVarP(&seedPath, "seed", "s", "", "path to YAML adjacency seed file")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	g, err := buildGraph()
	if err != nil {
		return err
	}
	log.Debugf("starting menu over %s", g)

	return menuLoop(g, cmd.OutOrStdout())
}

func buildGraph() (*core.Graph, error) {
	directed := core.WithDirected(!undirected)
	if seedPath == "" {
		return core.NewGraph(directed), nil
	}
	log.Debugf("seeding network from %s", seedPath)

	return seed.FromFile(seedPath, directed)
}
