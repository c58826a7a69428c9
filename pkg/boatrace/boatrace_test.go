package boatrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(288), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(71503), got)
}

func TestWays(t *testing.T) {
	assert.Equal(t, int64(4), Race{Time: 7, Distance: 9}.Ways())
	assert.Equal(t, int64(8), Race{Time: 15, Distance: 40}.Ways())
	assert.Equal(t, int64(9), Race{Time: 30, Distance: 200}.Ways())
	assert.Equal(t, int64(0), Race{Time: 4, Distance: 4}.Ways(), "best hold only ties the record")
	assert.Equal(t, int64(3), Race{Time: 4, Distance: 2}.Ways())
	assert.Equal(t, int64(0), Race{Time: 0, Distance: 0}.Ways())
}

func TestWays_MatchesEnumeration(t *testing.T) {
	for time := int64(0); time < 40; time++ {
		for dist := int64(0); dist < 120; dist += 7 {
			var want int64
			for h := int64(0); h <= time; h++ {
				if h*(time-h) > dist {
					want++
				}
			}
			assert.Equal(t, want, Race{Time: time, Distance: dist}.Ways(), "T=%d D=%d", time, dist)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Part1(strings.NewReader("Time: 7\n"))
	assert.ErrorIs(t, err, ErrMissingRow)

	_, err = Part1(strings.NewReader("Time: 7 8\nDistance: 9\n"))
	assert.ErrorIs(t, err, ErrRowMismatch)

	_, err = Part2(strings.NewReader("Time: 7\nSpeed: 3\nDistance: 9\n"))
	assert.ErrorIs(t, err, ErrUnknownRow)
	assert.ErrorContains(t, err, "line 2")

	got, err := Part1(strings.NewReader("\nTime: 7\n\nDistance: 9\n\n"))
	require.NoError(t, err, "blank lines are allowed")
	assert.Equal(t, int64(4), got)
}

func TestWays_LargeRace(t *testing.T) {
	// Roots of h*h - 71530h + 940200 lie near 13.1 and 71516.9.
	r := Race{Time: 71530, Distance: 940200}
	assert.Equal(t, int64(71503), r.Ways())
	assert.False(t, r.beats(13))
	assert.True(t, r.beats(14))
}
