// Package schematic scans an engine schematic grid for part numbers, which
// are numbers adjacent (diagonals included) to a symbol.
package schematic

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Number is a run of digits on one row, spanning columns [Start, End).
type Number struct {
	Row, Start, End int
	Value           int64
}

// Point is a grid cell.
type Point struct {
	Row, Col int
}

// Schematic is the parsed grid. Rows may differ in width.
type Schematic struct {
	rows    []string
	numbers []Number
}

// Parse reads the grid, one row per line.
func Parse(r io.Reader) (*Schematic, error) {
	s := &Schematic{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.TrimRight(scanner.Text(), "\r")
		s.numbers = append(s.numbers, scanRow(len(s.rows), row)...)
		s.rows = append(s.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return s, nil
}

func scanRow(rowIdx int, row string) []Number {
	var out []Number
	for i := 0; i < len(row); {
		if !isDigit(row[i]) {
			i++
			continue
		}
		n := Number{Row: rowIdx, Start: i}
		for ; i < len(row) && isDigit(row[i]); i++ {
			n.Value = n.Value*10 + int64(row[i]-'0')
		}
		n.End = i
		out = append(out, n)
	}
	return out
}

// Numbers returns every number in reading order.
func (s *Schematic) Numbers() []Number {
	return append([]Number(nil), s.numbers...)
}

func (s *Schematic) at(p Point) byte {
	if p.Row < 0 || p.Row >= len(s.rows) || p.Col < 0 || p.Col >= len(s.rows[p.Row]) {
		return '.'
	}
	return s.rows[p.Row][p.Col]
}

// neighbours calls fn for every cell bordering n.
func (s *Schematic) neighbours(n Number, fn func(Point, byte)) {
	for row := n.Row - 1; row <= n.Row+1; row++ {
		for col := n.Start - 1; col <= n.End; col++ {
			if row == n.Row && col >= n.Start && col < n.End {
				continue
			}
			p := Point{Row: row, Col: col}
			fn(p, s.at(p))
		}
	}
}

// PartNumbers returns the numbers that touch at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var parts []Number
	for _, n := range s.numbers {
		touches := false
		s.neighbours(n, func(_ Point, c byte) {
			if isSymbol(c) {
				touches = true
			}
		})
		if touches {
			parts = append(parts, n)
		}
	}
	return parts
}

// GearRatios returns, for every '*' touching exactly two numbers, the
// product of those numbers.
func (s *Schematic) GearRatios() map[Point]int64 {
	touching := make(map[Point][]int64)
	for _, n := range s.numbers {
		s.neighbours(n, func(p Point, c byte) {
			if c == '*' {
				touching[p] = append(touching[p], n.Value)
			}
		})
	}

	ratios := make(map[Point]int64)
	for p, nums := range touching {
		if len(nums) == 2 {
			ratios[p] = nums[0] * nums[1]
		}
	}
	return ratios
}

// Part1 sums the part numbers.
func Part1(r io.Reader) (int64, error) {
	s, err := Parse(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range s.PartNumbers() {
		total += n.Value
	}
	return total, nil
}

// Part2 sums the gear ratios.
func Part2(r io.Reader) (int64, error) {
	s, err := Parse(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, v := range s.GearRatios() {
		total += v
	}
	return total, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c) && c != ' '
}
