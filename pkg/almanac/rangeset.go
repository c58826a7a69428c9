package almanac

import (
	"fmt"
	"math"
	"slices"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// NewRange builds a range from a start and a length.
func NewRange(start, length uint64) (Range, error) {
	if start > math.MaxUint64-length {
		return Range{}, fmt.Errorf("range start %d length %d overflows", start, length)
	}
	return Range{Start: start, End: start + length}, nil
}

// Len returns the number of values in the range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no values.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether x lies in [Start, End).
func (r Range) Contains(x uint64) bool {
	return r.Start <= x && x < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// anyContains reports whether some range in set holds x.
func anyContains(set []Range, x uint64) bool {
	for _, r := range set {
		if r.Contains(x) {
			return true
		}
	}
	return false
}

// normalize drops empty ranges, sorts by start and merges ranges that
// overlap or touch. The input slice is not modified.
func normalize(set []Range) []Range {
	out := make([]Range, 0, len(set))
	for _, r := range set {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	merged := out[:0]
	for _, r := range out {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			if r.End > merged[n-1].End {
				merged[n-1].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
