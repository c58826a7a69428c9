package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/advent-go/advent/pkg/casebook"
	"github.com/advent-go/advent/pkg/puzzle"
	"github.com/advent-go/advent/pkg/runner"
	"github.com/advent-go/advent/pkg/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	checkCases    string
	checkWorkers  int
	checkColor    string
	checkFormat   string
	checkStrategy string
)

// errCheckFailed signals that at least one case did not pass.
var errCheckFailed = errors.New("check failed")

// checkStyles holds color formatters for check output
type checkStyles struct {
	pass    *color.Color
	fail    *color.Color
	errored *color.Color
	name    *color.Color
	heading *color.Color
}

// newCheckStyles creates color formatters
// enabled=false respects --color=never and NO_COLOR
func newCheckStyles(enabled bool) *checkStyles {
	s := &checkStyles{
		pass:    color.New(color.Bold, color.FgHiGreen),
		fail:    color.New(color.Bold, color.FgHiRed),
		errored: color.New(color.Bold, color.FgYellow),
		name:    color.New(color.FgHiBlue),
		heading: color.New(color.Bold),
	}

	for _, c := range []*color.Color{s.pass, s.fail, s.errored, s.name, s.heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check solvers against a casebook",
	Long: `Run every case in a casebook and compare the answers.

Without --cases the builtin casebook of worked examples is used. --cases
accepts a YAML file or a directory of them.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCases, "cases", "", "Casebook file or directory (default builtin examples)")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "Concurrent cases (default $ADVENT_WORKERS or CPU count)")
	checkCmd.Flags().StringVar(&checkColor, "color", "", "Color output: auto, always, never (default $ADVENT_COLOR)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "human", "Output format: human, json")
	checkCmd.Flags().StringVar(&checkStrategy, "strategy", "", "Range strategy for day 5 part 2: breakpoints, split")
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader := casebook.NewLoader()

	var cases []types.Case
	var err error
	if checkCases != "" {
		cases, err = loader.LoadPath(checkCases)
		if err != nil {
			return fmt.Errorf("loading cases from %s: %w", checkCases, err)
		}
	} else {
		cases, err = loader.LoadBuiltin()
		if err != nil {
			return fmt.Errorf("loading builtin cases: %w", err)
		}
	}

	strategy, err := resolveStrategy(checkStrategy)
	if err != nil {
		return err
	}
	workers := checkWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}

	logger.Debug("running cases", zap.Int("cases", len(cases)), zap.Int("workers", workers))
	r := runner.New(puzzle.NewRegistry(puzzle.WithStrategy(strategy)), runner.Config{
		Workers: workers,
		Logger:  logger,
	})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	outcomes, err := r.Run(ctx, cases)
	if err != nil {
		return fmt.Errorf("running cases: %w", err)
	}
	summary := runner.Summarize(outcomes)

	switch checkFormat {
	case "json":
		err = outputCheckJSON(cmd, outcomes, summary)
	case "human":
		err = outputCheckHuman(cmd, outcomes, summary)
	default:
		return fmt.Errorf("unknown output format: %s", checkFormat)
	}
	if err != nil {
		return err
	}

	if !summary.OK() {
		return fmt.Errorf("%w: %d failed, %d errored", errCheckFailed, summary.Failed, summary.Errored)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func outputCheckJSON(cmd *cobra.Command, outcomes []types.Outcome, summary runner.Summary) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Outcomes []types.Outcome `json:"outcomes"`
		Summary  runner.Summary  `json:"summary"`
	}{outcomes, summary})
}

func outputCheckHuman(cmd *cobra.Command, outcomes []types.Outcome, summary runner.Summary) error {
	out := cmd.OutOrStdout()
	s := newCheckStyles(colorEnabled(checkColor))

	for _, o := range outcomes {
		var status string
		switch o.Status {
		case types.StatusPass:
			status = s.pass.Sprint("PASS")
		case types.StatusFail:
			status = s.fail.Sprint("FAIL")
		default:
			status = s.errored.Sprint("ERR ")
		}

		fmt.Fprintf(out, "%s  %s part %d  %s", status, o.Case.Day, int(o.Case.Part), s.name.Sprint(o.Case.Name))
		switch o.Status {
		case types.StatusPass:
			fmt.Fprintf(out, "  = %d\n", o.Got)
		case types.StatusFail:
			fmt.Fprintf(out, "  got %d, want %d\n", o.Got, o.Case.Want)
		default:
			fmt.Fprintf(out, "  %s\n", o.Message)
		}
	}

	fmt.Fprintf(out, "\n%s %d passed, %d failed, %d errored\n",
		s.heading.Sprint("Summary:"), summary.Passed, summary.Failed, summary.Errored)
	return nil
}

// colorEnabled resolves a color mode; an empty mode uses the configured one.
func colorEnabled(mode string) bool {
	if mode == "" {
		mode = cfg.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check if stdout is a TTY and NO_COLOR is not set
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}
