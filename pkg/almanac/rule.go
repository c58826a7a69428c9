package almanac

import (
	"fmt"
	"math"
)

// Rule maps the half-open source interval [Source, Source+Length) onto
// [Destination, Destination+Length) by a constant offset.
type Rule struct {
	Source      uint64
	Length      uint64
	Destination uint64
}

// NewRule validates and returns a rule. Both intervals must be non-empty and
// must not overflow uint64.
func NewRule(destination, source, length uint64) (Rule, error) {
	r := Rule{Source: source, Length: length, Destination: destination}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks the rule invariants.
func (r Rule) Validate() error {
	if r.Length == 0 {
		return fmt.Errorf("%w: zero length at source %d", ErrInvalidRule, r.Source)
	}
	if r.Source > math.MaxUint64-r.Length || r.Destination > math.MaxUint64-r.Length {
		return fmt.Errorf("%w: interval of length %d overflows", ErrInvalidRule, r.Length)
	}
	return nil
}

// SourceEnd is the exclusive end of the source interval.
func (r Rule) SourceEnd() uint64 {
	return r.Source + r.Length
}

// DestinationEnd is the exclusive end of the destination interval.
func (r Rule) DestinationEnd() uint64 {
	return r.Destination + r.Length
}

// ContainsSource reports whether x falls inside the source interval.
func (r Rule) ContainsSource(x uint64) bool {
	return r.Source <= x && x < r.SourceEnd()
}

// ContainsDestination reports whether y falls inside the destination interval.
func (r Rule) ContainsDestination(y uint64) bool {
	return r.Destination <= y && y < r.DestinationEnd()
}

// Map translates a covered source value. The caller must check ContainsSource.
func (r Rule) Map(x uint64) uint64 {
	return r.Destination + (x - r.Source)
}

// Unmap translates a covered destination value back to its source.
func (r Rule) Unmap(y uint64) uint64 {
	return r.Source + (y - r.Destination)
}

func (r Rule) String() string {
	return fmt.Sprintf("[%d,%d)->[%d,%d)", r.Source, r.SourceEnd(), r.Destination, r.DestinationEnd())
}
