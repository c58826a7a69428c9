// Package oasis extrapolates integer sequences by repeated differencing.
package oasis

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Next predicts the value after seq. Differences are taken until they are
// all zero; an empty sequence predicts zero.
func Next(seq []int64) int64 {
	var next int64
	row := slices.Clone(seq)
	for len(row) > 0 && !allZero(row) {
		next += row[len(row)-1]
		for i := 0; i < len(row)-1; i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return next
}

// Prev predicts the value before seq.
func Prev(seq []int64) int64 {
	rev := slices.Clone(seq)
	slices.Reverse(rev)
	return Next(rev)
}

func allZero(row []int64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

// Parse reads one whitespace-separated sequence per non-blank line.
func Parse(r io.Reader) ([][]int64, error) {
	var seqs [][]int64
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		seq := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			seq[i] = v
		}
		seqs = append(seqs, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return seqs, nil
}

func sum(r io.Reader, predict func([]int64) int64) (int64, error) {
	seqs, err := Parse(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, s := range seqs {
		total += predict(s)
	}
	return total, nil
}

// Part1 sums the next value of every sequence.
func Part1(r io.Reader) (int64, error) {
	return sum(r, Next)
}

// Part2 sums the previous value of every sequence.
func Part2(r io.Reader) (int64, error) {
	return sum(r, Prev)
}
