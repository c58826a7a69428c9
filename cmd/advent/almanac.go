package main

import (
	"fmt"
	"strings"

	"github.com/advent-go/advent/pkg/almanac"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	almanacInput    string
	almanacMode     string
	almanacStrategy string
)

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Find the lowest location in a seed almanac",
	Long: `Push seeds through the almanac's stages and print the lowest location.

In seeds mode every header value is a seed. In ranges mode the header is read
as (start, length) pairs and the minimum is found without enumerating them.`,
	Args: cobra.NoArgs,
	RunE: runAlmanac,
}

func init() {
	almanacCmd.Flags().StringVar(&almanacInput, "input", "", "Almanac file, or - for stdin (default $ADVENT_INPUT_DIR/day05.txt)")
	almanacCmd.Flags().StringVar(&almanacMode, "mode", "seeds", "Query mode: seeds, ranges")
	almanacCmd.Flags().StringVar(&almanacStrategy, "strategy", "", "Range strategy: breakpoints, split (default $ADVENT_STRATEGY)")
}

func runAlmanac(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, almanacInput, 5)
	if err != nil {
		return err
	}
	a, err := almanac.Parse(strings.NewReader(input))
	if err != nil {
		return err
	}

	p := a.Pipeline()
	for i := 0; i < p.Len(); i++ {
		s := p.Stage(i)
		logger.Debug("stage", zap.Int("index", i), zap.String("name", s.Name()), zap.Int("rules", len(s.Rules())))
	}

	var lowest uint64
	switch almanacMode {
	case "seeds":
		lowest, err = a.LowestLocation()
	case "ranges":
		var strategy almanac.Strategy
		strategy, err = resolveStrategy(almanacStrategy)
		if err != nil {
			return err
		}
		lowest, err = a.LowestRangeLocation(strategy)
	default:
		return fmt.Errorf("unknown mode: %s", almanacMode)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), lowest)
	return nil
}
