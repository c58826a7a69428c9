package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/advent-go/advent/pkg/almanac"
	"github.com/advent-go/advent/pkg/puzzle"
	"github.com/advent-go/advent/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solvePart     int
	solveInput    string
	solveStrategy string
)

var solveCmd = &cobra.Command{
	Use:   "solve DAY",
	Short: "Solve a day's puzzle input",
	Long:  "Solve one or both parts of a day's puzzle and print the answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solvePart, "part", 0, "Part to solve: 1, 2, or 0 for both")
	solveCmd.Flags().StringVar(&solveInput, "input", "", "Input file, or - for stdin (default $ADVENT_INPUT_DIR/dayNN.txt)")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "", "Range strategy for day 5 part 2: breakpoints, split (default $ADVENT_STRATEGY)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	parts := []types.Part{types.PartOne, types.PartTwo}
	if solvePart != 0 {
		p := types.Part(solvePart)
		if err := p.Validate(); err != nil {
			return err
		}
		parts = []types.Part{p}
	}

	strategy, err := resolveStrategy(solveStrategy)
	if err != nil {
		return err
	}
	registry := puzzle.NewRegistry(puzzle.WithStrategy(strategy))
	if _, err := registry.Lookup(day); err != nil {
		return err
	}

	input, err := readInput(cmd, solveInput, day)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, part := range parts {
		start := time.Now()
		answer, err := registry.Solve(day, part, strings.NewReader(input))
		if err != nil {
			return err
		}
		logger.Debug("solved",
			zap.Stringer("day", day),
			zap.Int("part", int(part)),
			zap.Duration("elapsed", time.Since(start)))
		fmt.Fprintf(out, "%s part %d: %d\n", day, int(part), answer)
	}
	return nil
}

// resolveStrategy prefers the flag value over the environment default.
func resolveStrategy(flag string) (almanac.Strategy, error) {
	if flag == "" {
		flag = cfg.Strategy
	}
	return almanac.ParseStrategy(flag)
}
