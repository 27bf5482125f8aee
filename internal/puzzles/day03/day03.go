// Package day03 solves "Rucksack Reorganization". Item sets are 64-bit masks
// indexed by priority, so intersections are a single AND.
package day03

import (
	"math/bits"
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Rucksack Reorganization"

const exampleInput = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "157", Part2: "70"},
}

// Items is a set of item types, bit p set for priority p.
type Items uint64

// Priority maps a-z to 1-26 and A-Z to 27-52; anything else is 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// Only returns the priority of the single item in s, or 0 when s is empty.
// With more than one item the lowest priority wins.
func (s Items) Only() int {
	if s == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(s))
}

// Rucksack holds the item sets of both compartments.
type Rucksack struct {
	Contents string
	Left     Items
	Right    Items
}

// All returns every item in the rucksack.
func (r Rucksack) All() Items { return r.Left | r.Right }

func itemsOf(line int, s string) (Items, error) {
	var set Items
	for i := 0; i < len(s); i++ {
		p := Priority(s[i])
		if p == 0 {
			return 0, domain.InvalidInput("day03.parse", line, "item %q is not a letter", s[i])
		}
		set |= 1 << p
	}
	return set, nil
}

// Parse reads one rucksack per line; each line splits evenly into two compartments.
func Parse(raw []byte) ([]Rucksack, error) {
	var sacks []Rucksack
	for i, line := range input.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, domain.InvalidInput("day03.parse", i+1, "odd item count %d", len(line))
		}
		half := len(line) / 2
		left, err := itemsOf(i+1, line[:half])
		if err != nil {
			return nil, err
		}
		right, err := itemsOf(i+1, line[half:])
		if err != nil {
			return nil, err
		}
		sacks = append(sacks, Rucksack{Contents: line, Left: left, Right: right})
	}
	if len(sacks) == 0 {
		return nil, domain.InvalidInput("day03.parse", 0, "no rucksacks")
	}
	return sacks, nil
}

// Part1 sums the priority of the item found in both compartments of each rucksack.
func Part1(sacks []Rucksack) (int, error) {
	sum := 0
	for i, s := range sacks {
		p := (s.Left & s.Right).Only()
		if p == 0 {
			return 0, domain.NoSolution("day03.part1", "rucksack %d has no shared item", i+1)
		}
		sum += p
	}
	return sum, nil
}

// Part2 sums the priority of the badge carried by every three consecutive rucksacks.
func Part2(sacks []Rucksack) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, domain.InvalidInput("day03.part2", 0, "%d rucksacks do not form groups of three", len(sacks))
	}
	sum := 0
	for g := 0; g < len(sacks); g += 3 {
		badge := (sacks[g].All() & sacks[g+1].All() & sacks[g+2].All()).Only()
		if badge == 0 {
			return 0, domain.NoSolution("day03.part2", "group %d has no badge", g/3+1)
		}
		sum += badge
	}
	return sum, nil
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	sacks, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	p1, err := Part1(sacks)
	if err != nil {
		return domain.Answers{}, err
	}
	p2, err := Part2(sacks)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{Part1: domain.IntAnswer(p1), Part2: domain.IntAnswer(p2)}, nil
}
