// Package camelcards ranks poker-like hands and totals their winnings.
package camelcards

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedHand is returned for lines not shaped "CARDS BID".
var ErrMalformedHand = errors.New("malformed hand")

// Kind is a hand's type, ordered from weakest to strongest.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string {
	if k < HighCard || k > FiveOfAKind {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

const joker = 1

// Hand is five card values plus a bid.
type Hand struct {
	Cards [5]int
	Bid   int64
	Kind  Kind
}

// cardValue maps a face to its strength. With jokers, J is weaker than 2.
func cardValue(c byte, jokers bool) (int, bool) {
	switch {
	case c >= '2' && c <= '9':
		return int(c - '0'), true
	case c == 'T':
		return 10, true
	case c == 'J':
		if jokers {
			return joker, true
		}
		return 11, true
	case c == 'Q':
		return 12, true
	case c == 'K':
		return 13, true
	case c == 'A':
		return 14, true
	}
	return 0, false
}

// ParseHand parses "KTJJT 220".
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 5 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedHand, line)
	}
	var h Hand
	for i := 0; i < 5; i++ {
		v, ok := cardValue(fields[0][i], jokers)
		if !ok {
			return Hand{}, fmt.Errorf("%w: card %q", ErrMalformedHand, fields[0][i])
		}
		h.Cards[i] = v
	}
	bid, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid: %w", ErrMalformedHand, err)
	}
	h.Bid = bid
	h.Kind = classify(h.Cards)
	return h, nil
}

// classify groups equal cards. Jokers join the largest group.
func classify(cards [5]int) Kind {
	counts := make(map[int]int, 5)
	jokers := 0
	for _, c := range cards {
		if c == joker {
			jokers++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by kind, then card by card.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	return slices.Compare(a.Cards[:], b.Cards[:])
}

// Winnings sorts hands weakest first and sums bid times rank.
func Winnings(hands []Hand) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)
	var total int64
	for i, h := range sorted {
		total += h.Bid * int64(i+1)
	}
	return total
}

func solve(r io.Reader, jokers bool) (int64, error) {
	var hands []Hand
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n, err)
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}
	return Winnings(hands), nil
}

// Part1 totals winnings with J as jack.
func Part1(r io.Reader) (int64, error) {
	return solve(r, false)
}

// Part2 totals winnings with J as a wildcard joker.
func Part2(r io.Reader) (int64, error) {
	return solve(r, true)
}
