package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagRequests  int
	flagWorkers   int
	flagFailEvery int
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "reqsim",
	Short:         "Scoped dependency resolution under concurrent load",
	Long:          "reqsim simulates concurrent request handling on top of the di package: shared root bindings, one scope per request, auto-injected handlers.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log every request instead of the summary only")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(shadowCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the request simulation",
	Long:  "Provides a logger and app config at the root, then handles --requests requests across --workers goroutines, each in its own scope.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cfg := simConfig{
			requests:  flagRequests,
			workers:   flagWorkers,
			failEvery: flagFailEvery,
		}
		return runSimulation(cfg, log, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().IntVar(&flagRequests, "requests", 50, "number of simulated requests")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 4, "number of concurrent workers")
	runCmd.Flags().IntVar(&flagFailEvery, "fail-every", 0, "fail every Nth request (0 disables failures)")
}

var shadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Walk a three-level scope nesting",
	Long:  "Provides the same key at the root and in three nested scopes, printing the visible binding while entering and unwinding.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShadowWalk(cmd.OutOrStdout())
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
