package almanac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedToSoil(t *testing.T) *Stage {
	t.Helper()
	s, err := NewStage("seed-to-soil", []Rule{
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	})
	require.NoError(t, err)
	return s
}

func TestStage_Forward(t *testing.T) {
	s := seedToSoil(t)

	assert.Equal(t, uint64(50), s.Forward(98))
	assert.Equal(t, uint64(51), s.Forward(99))
	assert.Equal(t, uint64(55), s.Forward(53))
	assert.Equal(t, uint64(81), s.Forward(79))
	assert.Equal(t, uint64(10), s.Forward(10), "uncovered values pass through")
	assert.Equal(t, uint64(100), s.Forward(100), "source end is exclusive")
}

func TestStage_Backward(t *testing.T) {
	s := seedToSoil(t)

	assert.Equal(t, uint64(98), s.Backward(50))
	assert.Equal(t, uint64(53), s.Backward(55))
	assert.Equal(t, uint64(10), s.Backward(10))
	assert.Equal(t, uint64(100), s.Backward(100))
}

func TestStage_RoundTrip(t *testing.T) {
	s := seedToSoil(t)

	for _, r := range s.Rules() {
		for x := r.Source; x < r.SourceEnd(); x++ {
			require.Equal(t, x, s.Backward(s.Forward(x)), "x=%d", x)
		}
	}
}

func TestNewStage_SortsRules(t *testing.T) {
	s := seedToSoil(t)

	rules := s.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, uint64(50), rules[0].Source)
	assert.Equal(t, uint64(98), rules[1].Source)
	assert.Equal(t, "seed-to-soil", s.Name())
}

func TestNewStage_RejectsOverlap(t *testing.T) {
	_, err := NewStage("bad", []Rule{
		{Destination: 100, Source: 0, Length: 10},
		{Destination: 200, Source: 5, Length: 10},
	})
	require.ErrorIs(t, err, ErrOverlappingRules)
}

func TestNewStage_AdjacentRulesAllowed(t *testing.T) {
	_, err := NewStage("ok", []Rule{
		{Destination: 100, Source: 0, Length: 10},
		{Destination: 200, Source: 10, Length: 10},
	})
	require.NoError(t, err)
}

func TestNewStage_RejectsInvalidRule(t *testing.T) {
	_, err := NewStage("bad", []Rule{{Destination: 1, Source: 2, Length: 0}})
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewRule(^uint64(0), 0, 2)
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestStage_Empty(t *testing.T) {
	s, err := NewStage("empty", nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), s.Forward(42))
	assert.Equal(t, uint64(42), s.Backward(42))
	assert.Equal(t, []uint64{0}, s.Breakpoints())
}

func TestStage_Breakpoints(t *testing.T) {
	s := seedToSoil(t)
	assert.Equal(t, []uint64{0, 50, 98, 100}, s.Breakpoints())
}

func TestStage_ForwardRanges(t *testing.T) {
	s := seedToSoil(t)

	got := s.ForwardRanges([]Range{{Start: 96, End: 100}})
	want := []Range{{Start: 50, End: 52}, {Start: 98, End: 100}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForwardRanges mismatch (-want +got):\n%s", diff)
	}

	got = s.ForwardRanges([]Range{{Start: 0, End: 10}, {Start: 5, End: 20}})
	want = []Range{{Start: 0, End: 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identity ranges mismatch (-want +got):\n%s", diff)
	}
}
