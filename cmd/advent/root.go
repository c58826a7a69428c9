package main

import (
	"fmt"

	"github.com/advent-go/advent/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	quiet   bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent - daily puzzle solvers",
	Long: `Advent solves daily puzzle inputs and checks answers against casebooks.

Inputs are read from --input, from stdin with "--input -", or from
$ADVENT_INPUT_DIR/dayNN.txt.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		switch {
		case verbose:
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		case quiet:
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(almanacCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
