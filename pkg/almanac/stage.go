package almanac

import (
	"fmt"
	"slices"
	"sort"
)

// Stage is one layer of rewrite rules. Rules are kept sorted by source
// start and never overlap, so at most one rule covers any value.
type Stage struct {
	name  string
	rules []Rule
}

// NewStage copies, validates and sorts rules. Overlapping source intervals
// are rejected with ErrOverlappingRules.
func NewStage(name string, rules []Rule) (*Stage, error) {
	sorted := slices.Clone(rules)
	for _, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	slices.SortFunc(sorted, func(a, b Rule) int {
		switch {
		case a.Source < b.Source:
			return -1
		case a.Source > b.Source:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Source < prev.SourceEnd() {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlappingRules, prev, cur)
		}
	}
	return &Stage{name: name, rules: sorted}, nil
}

// Name returns the stage title.
func (s *Stage) Name() string {
	return s.name
}

// Rules returns a copy of the sorted rules.
func (s *Stage) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Forward maps x through the stage. Values no rule covers pass through
// unchanged.
func (s *Stage) Forward(x uint64) uint64 {
	if r, ok := s.lookup(x); ok {
		return r.Map(x)
	}
	return x
}

// Backward inverts Forward using destination intervals, with the same
// identity fallback.
func (s *Stage) Backward(y uint64) uint64 {
	for _, r := range s.rules {
		if r.ContainsDestination(y) {
			return r.Unmap(y)
		}
	}
	return y
}

// Preimages returns every value that Forward maps to y, ascending. A stage
// need not be injective: several rules may share a destination, and a rule
// may land on a value that also passes through unchanged.
func (s *Stage) Preimages(y uint64) []uint64 {
	var out []uint64
	for _, r := range s.rules {
		if r.ContainsDestination(y) {
			out = append(out, r.Unmap(y))
		}
	}
	if _, ok := s.lookup(y); !ok {
		out = append(out, y)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// lookup finds the rule covering x by binary search on source ends.
func (s *Stage) lookup(x uint64) (Rule, bool) {
	i := sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].SourceEnd() > x
	})
	if i < len(s.rules) && s.rules[i].ContainsSource(x) {
		return s.rules[i], true
	}
	return Rule{}, false
}

// Breakpoints returns the values at which the stage's offset can change:
// zero plus every rule's source start and source end, ascending.
func (s *Stage) Breakpoints() []uint64 {
	points := make([]uint64, 0, 2*len(s.rules)+1)
	points = append(points, 0)
	for _, r := range s.rules {
		points = append(points, r.Source, r.SourceEnd())
	}
	slices.Sort(points)
	return slices.Compact(points)
}

// ForwardRanges returns the image of set through the stage, splitting each
// range at rule boundaries. The result is normalized.
func (s *Stage) ForwardRanges(set []Range) []Range {
	var out []Range
	for _, in := range normalize(set) {
		cursor := in.Start
		i := sort.Search(len(s.rules), func(i int) bool {
			return s.rules[i].SourceEnd() > in.Start
		})
		for ; i < len(s.rules) && s.rules[i].Source < in.End; i++ {
			r := s.rules[i]
			if cursor < r.Source {
				out = append(out, Range{Start: cursor, End: r.Source})
				cursor = r.Source
			}
			end := min(in.End, r.SourceEnd())
			out = append(out, Range{Start: r.Map(cursor), End: r.Map(end-1) + 1})
			cursor = end
		}
		if cursor < in.End {
			out = append(out, Range{Start: cursor, End: in.End})
		}
	}
	return normalize(out)
}
