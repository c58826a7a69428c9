package oasis

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(114), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestNextPrev(t *testing.T) {
	assert.Equal(t, int64(68), Next([]int64{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, int64(5), Prev([]int64{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, int64(5), Next([]int64{5}))
	assert.Equal(t, int64(0), Next(nil))
	assert.Equal(t, int64(-12), Next([]int64{-3, -6, -9}))
}

func TestNext_DoesNotModifyInput(t *testing.T) {
	seq := []int64{1, 3, 6, 10}
	Next(seq)
	assert.Equal(t, []int64{1, 3, 6, 10}, seq)
}

func TestParse_Error(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 x\n"))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
