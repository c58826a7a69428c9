package almanac

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is returned for zero-length or overflowing rules.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrOverlappingRules is returned when two rules of one stage share
	// source values, which would make lookups ambiguous.
	ErrOverlappingRules = errors.New("overlapping rules")

	// ErrMissingSeeds is returned when the input lacks the "seeds:" header.
	ErrMissingSeeds = errors.New(`missing "seeds:" header`)

	// ErrNoSeeds is returned by queries over an empty seed list.
	ErrNoSeeds = errors.New("no seeds")

	// ErrOddSeedCount is returned when seeds cannot be paired into ranges.
	ErrOddSeedCount = errors.New("odd number of seed values")

	// ErrNoStages is returned when the input has no stage blocks.
	ErrNoStages = errors.New("no stages")

	// ErrMalformedRule is returned for rule lines without exactly three numbers.
	ErrMalformedRule = errors.New("malformed rule line")

	// ErrUnknownStrategy is returned for an unrecognised range strategy.
	ErrUnknownStrategy = errors.New("unknown range strategy")
)

// ParseError identifies the part of the input that failed to parse.
type ParseError struct {
	Section string // "seeds" or `stage "<title>"`
	Line    int    // 1-based input line, 0 when not tied to a line
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s (line %d): %v", e.Section, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Section, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
