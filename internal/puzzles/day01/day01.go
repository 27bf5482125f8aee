// Package day01 solves "Calorie Counting": blank-line separated inventories of
// food calories, one inventory per elf.
package day01

import (
	"slices"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Calorie Counting"

const exampleInput = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "24000", Part2: "45000"},
}

// Elf carries the calories of each food item it holds.
type Elf struct {
	Foods []int
}

// Total returns the sum of all food calories.
func (e Elf) Total() int {
	total := 0
	for _, f := range e.Foods {
		total += f
	}
	return total
}

// Parse reads one elf per block. The last block needs no trailing blank line.
func Parse(raw []byte) ([]Elf, error) {
	blocks := input.Blocks(input.Lines(raw))
	if len(blocks) == 0 {
		return nil, domain.InvalidInput("day01.parse", 0, "no inventories")
	}
	elves := make([]Elf, 0, len(blocks))
	for _, b := range blocks {
		elf := Elf{Foods: make([]int, 0, len(b.Lines))}
		for i, line := range b.Lines {
			cal, err := input.Uint("day01.parse", b.Start+i, line)
			if err != nil {
				return nil, err
			}
			elf.Foods = append(elf.Foods, cal)
		}
		elves = append(elves, elf)
	}
	return elves, nil
}

// Part1 returns the largest inventory.
func Part1(elves []Elf) int {
	return TopTotal(elves, 1)
}

// Part2 returns the sum of the three largest inventories.
func Part2(elves []Elf) int {
	return TopTotal(elves, 3)
}

// TopTotal sums the n largest totals, or every total when there are fewer than n elves.
func TopTotal(elves []Elf, n int) int {
	totals := make([]int, len(elves))
	for i, e := range elves {
		totals[i] = e.Total()
	}
	slices.Sort(totals)
	slices.Reverse(totals)

	sum := 0
	for _, t := range totals[:min(n, len(totals))] {
		sum += t
	}
	return sum
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	elves, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{
		Part1: domain.IntAnswer(Part1(elves)),
		Part2: domain.IntAnswer(Part2(elves)),
	}, nil
}
