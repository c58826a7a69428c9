// Package cubegame scores games in which cubes of three colours are drawn
// from a bag several times.
package cubegame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformedGame is returned for lines that are not "Game N: ...".
	ErrMalformedGame = errors.New("malformed game")
	// ErrUnknownColor is returned for a colour other than red, green or blue.
	ErrUnknownColor = errors.New("unknown color")
)

// Draw counts the cubes of each colour revealed in one handful.
type Draw struct {
	Red, Green, Blue int
}

// Game is a numbered sequence of draws.
type Game struct {
	ID    int
	Draws []Draw
}

// Bag is the load Part1 checks games against.
var Bag = Draw{Red: 12, Green: 13, Blue: 14}

// Possible reports whether every draw fits within bag.
func (g Game) Possible(bag Draw) bool {
	for _, d := range g.Draws {
		if d.Red > bag.Red || d.Green > bag.Green || d.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// Minimum is the smallest bag that makes the game possible.
func (g Game) Minimum() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Power multiplies the three counts.
func (d Draw) Power() int {
	return d.Red * d.Green * d.Blue
}

// Part1 sums the IDs of games possible with Bag.
func Part1(r io.Reader) (int64, error) {
	games, err := Parse(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		if g.Possible(Bag) {
			total += int64(g.ID)
		}
	}
	return total, nil
}

// Part2 sums the power of every game's minimum bag.
func Part2(r io.Reader) (int64, error) {
	games, err := Parse(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		total += int64(g.Minimum().Power())
	}
	return total, nil
}

// Parse reads one game per non-blank line.
func Parse(r io.Reader) ([]Game, error) {
	var games []Game
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return games, nil
}

// ParseGame parses "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: bad header %q", ErrMalformedGame, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id: %w", ErrMalformedGame, err)
	}

	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		var d Draw
		for _, part := range strings.Split(set, ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("%w: bad count %q", ErrMalformedGame, part)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("%w: count %q: %w", ErrMalformedGame, fields[0], err)
			}
			switch fields[1] {
			case "red":
				d.Red += n
			case "green":
				d.Green += n
			case "blue":
				d.Blue += n
			default:
				return Game{}, fmt.Errorf("%w: %q", ErrUnknownColor, fields[1])
			}
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}
