package types

import (
	"errors"
	"fmt"
)

// ErrInvalidPart is returned for a part other than 1 or 2.
var ErrInvalidPart = errors.New("part must be 1 or 2")

// Day is a puzzle day, starting at 1.
type Day int

func (d Day) String() string {
	return fmt.Sprintf("day%02d", int(d))
}

// InputName is the conventional input file name for the day, e.g. "day05.txt".
func (d Day) InputName() string {
	return d.String() + ".txt"
}

// Part selects the first or second question of a day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Validate checks that p is PartOne or PartTwo.
func (p Part) Validate() error {
	if p != PartOne && p != PartTwo {
		return fmt.Errorf("%w: got %d", ErrInvalidPart, int(p))
	}
	return nil
}
