// Package day04 solves "Camp Cleanup": pairs of inclusive section ranges.
package day04

import (
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Camp Cleanup"

const exampleInput = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "2", Part2: "4"},
}

// Range is an inclusive span of section IDs.
type Range struct {
	Lo, Hi int
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Lo <= other.Lo && r.Hi >= other.Hi
}

// Overlaps reports whether r and other share at least one section.
func (r Range) Overlaps(other Range) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Pair is the two assignments on one line.
type Pair struct {
	First, Second Range
}

// Nested reports whether either range fully contains the other.
func (p Pair) Nested() bool {
	return p.First.Contains(p.Second) || p.Second.Contains(p.First)
}

func parseRange(line int, s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, domain.InvalidInput("day04.parse", line, "range %q has no '-'", s)
	}
	a, err := input.Uint("day04.parse", line, lo)
	if err != nil {
		return Range{}, err
	}
	b, err := input.Uint("day04.parse", line, hi)
	if err != nil {
		return Range{}, err
	}
	if a > b {
		return Range{}, domain.InvalidInput("day04.parse", line, "range %q is reversed", s)
	}
	return Range{Lo: a, Hi: b}, nil
}

// Parse reads one pair per non-empty line in the form a-b,c-d.
func Parse(raw []byte) ([]Pair, error) {
	var pairs []Pair
	for i, line := range input.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, domain.InvalidInput("day04.parse", i+1, "pair %q has no ','", line)
		}
		first, err := parseRange(i+1, left)
		if err != nil {
			return nil, err
		}
		second, err := parseRange(i+1, right)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{First: first, Second: second})
	}
	if len(pairs) == 0 {
		return nil, domain.InvalidInput("day04.parse", 0, "no pairs")
	}
	return pairs, nil
}

// Part1 counts pairs where one range fully contains the other.
func Part1(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.Nested() {
			n++
		}
	}
	return n
}

// Part2 counts pairs that overlap at all.
func Part2(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.First.Overlaps(p.Second) {
			n++
		}
	}
	return n
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	pairs, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{
		Part1: domain.IntAnswer(Part1(pairs)),
		Part2: domain.IntAnswer(Part2(pairs)),
	}, nil
}
