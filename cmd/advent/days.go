package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/advent-go/advent/pkg/puzzle"
	"github.com/spf13/cobra"
)

var daysFormat string

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Inspect available puzzles",
	Long:  "Commands for listing the puzzle days this build can solve",
}

var daysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available days",
	Long:  "Display every solvable day with its title and default input file",
	RunE:  runDaysList,
}

func init() {
	daysCmd.AddCommand(daysListCmd)
	daysListCmd.Flags().StringVar(&daysFormat, "format", "table", "Output format: table, json")
}

func runDaysList(cmd *cobra.Command, args []string) error {
	puzzles := puzzle.NewRegistry().All()

	switch daysFormat {
	case "json":
		return outputDaysJSON(cmd, puzzles)
	case "table":
		return outputDaysTable(cmd, puzzles)
	default:
		return fmt.Errorf("unknown output format: %s", daysFormat)
	}
}

func outputDaysJSON(cmd *cobra.Command, puzzles []puzzle.Puzzle) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(puzzles)
}

func outputDaysTable(cmd *cobra.Command, puzzles []puzzle.Puzzle) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tTitle\tInput\n")
	fmt.Fprintf(w, "---\t-----\t-----\n")

	for _, p := range puzzles {
		fmt.Fprintf(w, "%d\t%s\t%s\n", int(p.Day), p.Title, p.Day.InputName())
	}

	return nil
}
