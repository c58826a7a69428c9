package schematic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(4361), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(467835), got)
}

func TestNumbers(t *testing.T) {
	s, err := Parse(strings.NewReader("12.3\n.*..\n"))
	require.NoError(t, err)

	nums := s.Numbers()
	require.Len(t, nums, 2)
	assert.Equal(t, Number{Row: 0, Start: 0, End: 2, Value: 12}, nums[0])
	assert.Equal(t, Number{Row: 0, Start: 3, End: 4, Value: 3}, nums[1])

	assert.Len(t, s.PartNumbers(), 1)
	assert.Empty(t, s.GearRatios())
}

func TestGearRatios_ExactlyTwo(t *testing.T) {
	s, err := Parse(strings.NewReader("2.3\n.*.\n4..\n"))
	require.NoError(t, err)

	assert.Empty(t, s.GearRatios(), "three numbers touch the gear")

	s, err = Parse(strings.NewReader("2*3\n"))
	require.NoError(t, err)
	assert.Equal(t, map[Point]int64{{Row: 0, Col: 1}: 6}, s.GearRatios())
}

func TestRaggedRows(t *testing.T) {
	s, err := Parse(strings.NewReader("1\n..#5\n"))
	require.NoError(t, err)
	assert.Len(t, s.PartNumbers(), 1)
}
