package almanac

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrAnswerOverflow is returned when a location does not fit in an int64 answer.
var ErrAnswerOverflow = errors.New("answer overflows int64")

// Part1 returns the lowest location over the scalar seeds.
func Part1(r io.Reader) (int64, error) {
	a, err := Parse(r)
	if err != nil {
		return 0, err
	}
	v, err := a.LowestLocation()
	if err != nil {
		return 0, err
	}
	return answer(v)
}

// Part2 returns the lowest location over the seed ranges.
func Part2(r io.Reader) (int64, error) {
	return Part2With(r, StrategyBreakpoints)
}

// Part2With is Part2 with an explicit range strategy.
func Part2With(r io.Reader, strategy Strategy) (int64, error) {
	a, err := Parse(r)
	if err != nil {
		return 0, err
	}
	v, err := a.LowestRangeLocation(strategy)
	if err != nil {
		return 0, err
	}
	return answer(v)
}

func answer(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrAnswerOverflow, v)
	}
	return int64(v), nil
}
