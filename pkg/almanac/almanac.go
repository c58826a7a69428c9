// Package almanac implements the interval remapper: seeds are pushed through
// a pipeline of stages, each a set of non-overlapping range translations,
// and the lowest resulting value is reported either for individual seeds or
// for whole seed ranges.
package almanac

import (
	"fmt"
	"slices"
)

// Strategy selects how range queries are answered.
type Strategy string

const (
	// StrategyBreakpoints evaluates only rule breakpoints and range starts.
	StrategyBreakpoints Strategy = "breakpoints"
	// StrategySplit propagates ranges through every stage by splitting.
	StrategySplit Strategy = "split"
)

// ParseStrategy converts a flag value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBreakpoints, StrategySplit:
		return Strategy(s), nil
	case "":
		return StrategyBreakpoints, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Almanac is a parsed puzzle input: the seed header and the pipeline.
type Almanac struct {
	seeds    []uint64
	pipeline *Pipeline
}

// New assembles an almanac from already-built parts.
func New(seeds []uint64, pipeline *Pipeline) *Almanac {
	return &Almanac{seeds: slices.Clone(seeds), pipeline: pipeline}
}

// Seeds returns the seed header values as scalar seeds.
func (a *Almanac) Seeds() []uint64 {
	return slices.Clone(a.seeds)
}

// SeedRanges interprets the seed header as consecutive (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.seeds)%2 != 0 {
		return nil, &ParseError{Section: "seeds", Err: fmt.Errorf("%w: %d", ErrOddSeedCount, len(a.seeds))}
	}
	ranges := make([]Range, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		r, err := NewRange(a.seeds[i], a.seeds[i+1])
		if err != nil {
			return nil, &ParseError{Section: "seeds", Err: fmt.Errorf("seed pair %d: %w", i/2, err)}
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Pipeline returns the stage pipeline.
func (a *Almanac) Pipeline() *Pipeline {
	return a.pipeline
}

// LowestLocation returns the minimum pipeline output over the scalar seeds.
func (a *Almanac) LowestLocation() (uint64, error) {
	if len(a.seeds) == 0 {
		return 0, ErrNoSeeds
	}
	best := a.pipeline.Forward(a.seeds[0])
	for _, s := range a.seeds[1:] {
		best = min(best, a.pipeline.Forward(s))
	}
	return best, nil
}

// LowestRangeLocation returns the minimum pipeline output over the seed
// ranges, computed with the given strategy.
func (a *Almanac) LowestRangeLocation(strategy Strategy) (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	var (
		best uint64
		ok   bool
	)
	switch strategy {
	case StrategyBreakpoints, "":
		best, ok = a.pipeline.MinOverRanges(ranges)
	case StrategySplit:
		best, ok = a.pipeline.MinOverRangesSplit(ranges)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if !ok {
		return 0, ErrNoSeeds
	}
	return best, nil
}
