// Package trebuchet recovers calibration values from lines of text: the
// first and last digit of each line form a two-digit number.
package trebuchet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoDigits is returned for a non-blank line that holds no digit.
var ErrNoDigits = errors.New("line has no digits")

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums calibration values using numeric digits only.
func Part1(r io.Reader) (int64, error) {
	return sum(r, false)
}

// Part2 also accepts digits spelled out as words. Words may overlap, so
// "eightwo" yields 8 then 2.
func Part2(r io.Reader) (int64, error) {
	return sum(r, true)
}

func sum(r io.Reader, words bool) (int64, error) {
	var total int64
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := Calibration(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n, err)
		}
		total += int64(v)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}
	return total, nil
}

// Calibration returns 10*first + last digit of line.
func Calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}

func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return d + 1, true
		}
	}
	return 0, false
}
