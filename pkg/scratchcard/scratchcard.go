// Package scratchcard scores scratchcards by counting how many of the
// numbers you have appear among the winning numbers.
package scratchcard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedCard is returned for lines not shaped "Card N: w... | h...".
var ErrMalformedCard = errors.New("malformed card")

// Matches parses one card line and counts its matching numbers.
func Matches(line string) (int, error) {
	_, numbers, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	winText, haveText, ok := strings.Cut(numbers, "|")
	if !ok {
		return 0, fmt.Errorf("%w: missing '|' in %q", ErrMalformedCard, line)
	}

	winning := make(map[int]struct{})
	for _, f := range strings.Fields(winText) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedCard, err)
		}
		winning[n] = struct{}{}
	}

	count := 0
	for _, f := range strings.Fields(haveText) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedCard, err)
		}
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count, nil
}

func readMatches(r io.Reader) ([]int, error) {
	var out []int
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m, err := Matches(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}

// Part1 sums card points: one for the first match, doubled for each
// further match.
func Part1(r io.Reader) (int64, error) {
	matches, err := readMatches(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts cards when a card with m matches wins one copy of each of
// the next m cards.
func Part2(r io.Reader) (int64, error) {
	matches, err := readMatches(r)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(matches))
	for i := range copies {
		copies[i] = 1
	}

	var total int64
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total, nil
}
