// Package boatrace counts the ways to win toy boat races. Holding the
// button for h of a race's T milliseconds moves the boat h*(T-h) millimetres.
package boatrace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingRow is returned when the Time or Distance row is absent.
	ErrMissingRow = errors.New("missing row")
	// ErrRowMismatch is returned when the rows differ in length.
	ErrRowMismatch = errors.New("time and distance rows differ in length")
	// ErrUnknownRow is returned for a non-blank line that is neither row.
	ErrUnknownRow = errors.New("unknown row")
)

// Race is one race's duration and the record distance to beat.
type Race struct {
	Time     int64
	Distance int64
}

// Ways counts hold times that beat the record. Winning holds solve
// h*h - T*h + D < 0, so they lie strictly between the roots of that
// quadratic and are symmetric around T/2. The float root is nudged onto
// the shortest winning integer hold.
func (r Race) Ways() int64 {
	half := r.Time / 2
	if !r.beats(half) {
		return 0
	}
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Distance)
	shortest := int64(math.Floor((float64(r.Time) - math.Sqrt(max(disc, 0))) / 2))
	shortest = min(max(shortest, 0), half)
	for !r.beats(shortest) {
		shortest++
	}
	for shortest > 0 && r.beats(shortest-1) {
		shortest--
	}
	return r.Time - 2*shortest + 1
}

func (r Race) beats(hold int64) bool {
	return hold*(r.Time-hold) > r.Distance
}

// Part1 multiplies the ways to win every race.
func Part1(r io.Reader) (int64, error) {
	times, distances, err := readRows(r)
	if err != nil {
		return 0, err
	}
	races, err := pair(times, distances)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, race := range races {
		product *= race.Ways()
	}
	return product, nil
}

// Part2 ignores the spaces between numbers, reading each row as one race.
func Part2(r io.Reader) (int64, error) {
	times, distances, err := readRows(r)
	if err != nil {
		return 0, err
	}
	t, err := strconv.ParseInt(strings.Join(times, ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("time: %w", err)
	}
	d, err := strconv.ParseInt(strings.Join(distances, ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return Race{Time: t, Distance: d}.Ways(), nil
}

func pair(times, distances []string) ([]Race, error) {
	if len(times) != len(distances) {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrRowMismatch, len(times), len(distances))
	}
	races := make([]Race, len(times))
	for i := range times {
		t, err := strconv.ParseInt(times[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("time %q: %w", times[i], err)
		}
		d, err := strconv.ParseInt(distances[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("distance %q: %w", distances[i], err)
		}
		races[i] = Race{Time: t, Distance: d}
	}
	return races, nil
}

func readRows(r io.Reader) (times, distances []string, err error) {
	var haveTime, haveDistance bool
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Time:"); ok {
			times, haveTime = strings.Fields(rest), true
		} else if rest, ok := strings.CutPrefix(line, "Distance:"); ok {
			distances, haveDistance = strings.Fields(rest), true
		} else if line != "" {
			return nil, nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrUnknownRow, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}
	if !haveTime {
		return nil, nil, fmt.Errorf("%w: Time", ErrMissingRow)
	}
	if !haveDistance {
		return nil, nil, fmt.Errorf("%w: Distance", ErrMissingRow)
	}
	return times, distances, nil
}
