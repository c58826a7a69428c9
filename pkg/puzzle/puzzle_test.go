package puzzle

import (
	"strings"
	"testing"

	"github.com/advent-go/advent/pkg/almanac"
	"github.com/advent-go/advent/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_All(t *testing.T) {
	reg := NewRegistry()
	all := reg.All()

	require.Len(t, all, 9)
	for i, p := range all {
		assert.Equal(t, types.Day(i+1), p.Day)
		assert.NotEmpty(t, p.Title)
		for _, part := range []types.Part{types.PartOne, types.PartTwo} {
			s, err := p.Solver(part)
			require.NoError(t, err)
			assert.NotNil(t, s, "%s part %d", p.Day, part)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()

	p, err := reg.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, "Seed almanac", p.Title)

	_, err = reg.Lookup(25)
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = p.Solver(3)
	assert.ErrorIs(t, err, types.ErrInvalidPart)
}

func TestRegistry_Solve(t *testing.T) {
	got, err := NewRegistry().Solve(9, types.PartOne, strings.NewReader("0 3 6 9 12 15\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(18), got)
}

func TestRegistry_SolveWrapsErrors(t *testing.T) {
	_, err := NewRegistry().Solve(5, types.PartOne, strings.NewReader("garbage"))
	require.ErrorIs(t, err, almanac.ErrMissingSeeds)
	assert.Contains(t, err.Error(), "day05 part 1")
}

func TestRegistry_WithStrategy(t *testing.T) {
	input := "seeds: 0 20\n\nshift:\n100 0 10\n"
	for _, s := range []almanac.Strategy{almanac.StrategyBreakpoints, almanac.StrategySplit} {
		got, err := NewRegistry(WithStrategy(s)).Solve(5, types.PartTwo, strings.NewReader(input))
		require.NoError(t, err, s)
		assert.Equal(t, int64(10), got, s)
	}
}
