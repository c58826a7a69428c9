package almanac

import "slices"

// Pipeline is an ordered sequence of stages applied left to right.
type Pipeline struct {
	stages []*Stage
}

// NewPipeline returns a pipeline over stages in the given order.
func NewPipeline(stages ...*Stage) *Pipeline {
	return &Pipeline{stages: append([]*Stage(nil), stages...)}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stage returns the stage at index i.
func (p *Pipeline) Stage(i int) *Stage {
	return p.stages[i]
}

// Forward maps x through every stage.
func (p *Pipeline) Forward(x uint64) uint64 {
	return p.ForwardFrom(x, 0)
}

// ForwardFrom maps x through stages [start, end), for a value already
// positioned after start stages.
func (p *Pipeline) ForwardFrom(x uint64, start int) uint64 {
	for _, s := range p.stages[p.clamp(start):] {
		x = s.Forward(x)
	}
	return x
}

// ForwardTo maps x through stages [0, levels).
func (p *Pipeline) ForwardTo(x uint64, levels int) uint64 {
	for _, s := range p.stages[:p.clamp(levels)] {
		x = s.Forward(x)
	}
	return x
}

// BackwardFrom maps y, a value seen after levels stages, back through
// stages levels-1 down to 0.
func (p *Pipeline) BackwardFrom(y uint64, levels int) uint64 {
	for i := p.clamp(levels) - 1; i >= 0; i-- {
		y = p.stages[i].Backward(y)
	}
	return y
}

// PreimagesFrom returns every input whose value after levels stages is y,
// ascending.
func (p *Pipeline) PreimagesFrom(y uint64, levels int) []uint64 {
	values := []uint64{y}
	for i := p.clamp(levels) - 1; i >= 0 && len(values) > 0; i-- {
		var next []uint64
		for _, v := range values {
			next = append(next, p.stages[i].Preimages(v)...)
		}
		slices.Sort(next)
		values = slices.Compact(next)
	}
	return values
}

// ForwardRanges returns the exact image of set through every stage.
func (p *Pipeline) ForwardRanges(set []Range) []Range {
	out := normalize(set)
	for _, s := range p.stages {
		out = s.ForwardRanges(out)
	}
	return out
}

// MinOverRanges returns the smallest value the pipeline produces for any
// input in set, without enumerating the ranges.
//
// Every rule is a pure translation, so the composed forward function is
// piecewise slope-1 and each piece attains its minimum at its first value.
// Pieces begin either at a seed range start or at a value whose image after
// i stages is a breakpoint of stage i. Stages need not be injective, so each
// breakpoint is mapped back to all of its preimages in the input domain; the
// breakpoint is a candidate when a seed range holds any of them, and is then
// forwarded through the remaining stages. This reasoning does not survive
// rules with any other slope.
//
// ok is false when set holds no values.
func (p *Pipeline) MinOverRanges(set []Range) (best uint64, ok bool) {
	consider := func(v uint64) {
		if !ok || v < best {
			best, ok = v, true
		}
	}

	for _, r := range set {
		if !r.Empty() {
			consider(p.Forward(r.Start))
		}
	}
	if !ok {
		return 0, false
	}

	for i, s := range p.stages {
		for _, b := range s.Breakpoints() {
			for _, src := range p.PreimagesFrom(b, i) {
				if anyContains(set, src) {
					consider(p.ForwardFrom(b, i))
					break
				}
			}
		}
	}
	return best, ok
}

// MinOverRangesSplit computes the same minimum as MinOverRanges by
// propagating the ranges themselves.
func (p *Pipeline) MinOverRangesSplit(set []Range) (uint64, bool) {
	out := p.ForwardRanges(set)
	if len(out) == 0 {
		return 0, false
	}
	return out[0].Start, true
}

func (p *Pipeline) clamp(levels int) int {
	return max(0, min(levels, len(p.stages)))
}
