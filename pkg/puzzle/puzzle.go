// Package puzzle maps each puzzle day and part to its solver.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/advent-go/advent/pkg/almanac"
	"github.com/advent-go/advent/pkg/boatrace"
	"github.com/advent-go/advent/pkg/camelcards"
	"github.com/advent-go/advent/pkg/cubegame"
	"github.com/advent-go/advent/pkg/oasis"
	"github.com/advent-go/advent/pkg/schematic"
	"github.com/advent-go/advent/pkg/scratchcard"
	"github.com/advent-go/advent/pkg/trebuchet"
	"github.com/advent-go/advent/pkg/types"
	"github.com/advent-go/advent/pkg/wasteland"
)

// ErrUnknownDay is returned for a day with no registered solver.
var ErrUnknownDay = errors.New("no solver for day")

// Solver computes one answer from a puzzle input.
type Solver func(io.Reader) (int64, error)

// Puzzle describes one day's solvers.
type Puzzle struct {
	Day   types.Day `json:"day"`
	Title string    `json:"title"`
	parts [2]Solver
}

// Solver returns the solver for part.
func (p Puzzle) Solver(part types.Part) (Solver, error) {
	if err := part.Validate(); err != nil {
		return nil, err
	}
	return p.parts[part-1], nil
}

// Registry holds the puzzles known to the program.
type Registry struct {
	puzzles map[types.Day]Puzzle
}

type config struct {
	strategy almanac.Strategy
}

// Option configures a Registry.
type Option func(*config)

// WithStrategy selects the range strategy used by day 5 part 2.
// Default is almanac.StrategyBreakpoints.
func WithStrategy(s almanac.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// NewRegistry returns a registry of every implemented day.
func NewRegistry(opts ...Option) *Registry {
	cfg := &config{strategy: almanac.StrategyBreakpoints}
	for _, opt := range opts {
		opt(cfg)
	}

	seedRanges := func(r io.Reader) (int64, error) {
		return almanac.Part2With(r, cfg.strategy)
	}

	reg := &Registry{puzzles: make(map[types.Day]Puzzle)}
	for _, p := range []Puzzle{
		{Day: 1, Title: "Trebuchet calibration", parts: [2]Solver{trebuchet.Part1, trebuchet.Part2}},
		{Day: 2, Title: "Cube conundrum", parts: [2]Solver{cubegame.Part1, cubegame.Part2}},
		{Day: 3, Title: "Gear ratios", parts: [2]Solver{schematic.Part1, schematic.Part2}},
		{Day: 4, Title: "Scratchcards", parts: [2]Solver{scratchcard.Part1, scratchcard.Part2}},
		{Day: 5, Title: "Seed almanac", parts: [2]Solver{almanac.Part1, seedRanges}},
		{Day: 6, Title: "Boat races", parts: [2]Solver{boatrace.Part1, boatrace.Part2}},
		{Day: 7, Title: "Camel cards", parts: [2]Solver{camelcards.Part1, camelcards.Part2}},
		{Day: 8, Title: "Haunted wasteland", parts: [2]Solver{wasteland.Part1, wasteland.Part2}},
		{Day: 9, Title: "Mirage maintenance", parts: [2]Solver{oasis.Part1, oasis.Part2}},
	} {
		reg.puzzles[p.Day] = p
	}
	return reg
}

// Lookup returns the puzzle for day.
func (r *Registry) Lookup(day types.Day) (Puzzle, error) {
	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w %d", ErrUnknownDay, int(day))
	}
	return p, nil
}

// All returns every puzzle ordered by day.
func (r *Registry) All() []Puzzle {
	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Solve runs the solver for (day, part) over input.
func (r *Registry) Solve(day types.Day, part types.Part, input io.Reader) (int64, error) {
	p, err := r.Lookup(day)
	if err != nil {
		return 0, err
	}
	solve, err := p.Solver(part)
	if err != nil {
		return 0, err
	}
	answer, err := solve(input)
	if err != nil {
		return 0, fmt.Errorf("%s part %d: %w", day, int(part), err)
	}
	return answer, nil
}
