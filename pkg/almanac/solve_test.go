package almanac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParts(t *testing.T) {
	got, err := Part1(strings.NewReader(sampleAlmanac))
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)

	got, err = Part2(strings.NewReader(sampleAlmanac))
	require.NoError(t, err)
	assert.Equal(t, int64(46), got)

	got, err = Part2With(strings.NewReader(sampleAlmanac), StrategySplit)
	require.NoError(t, err)
	assert.Equal(t, int64(46), got)
}

func TestPart1_Overflow(t *testing.T) {
	_, err := Part1(strings.NewReader("seeds: 18446744073709551000\n\nm:\n"))
	assert.ErrorIs(t, err, ErrAnswerOverflow)
}

func TestParts_ParseFailure(t *testing.T) {
	_, err := Part1(strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrMissingSeeds)
	_, err = Part2(strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrMissingSeeds)
}
