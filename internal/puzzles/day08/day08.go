// Package day08 solves "Treetop Tree House": line of sight over a grid of tree heights.
package day08

import (
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Treetop Tree House"

const exampleInput = `30373
25512
65332
33549
35390
`

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "21", Part2: "8"},
}

// Grid holds tree heights, row-major.
type Grid struct {
	Width, Height int
	Trees         []int8
}

// At returns the height at column x, row y.
func (g Grid) At(x, y int) int8 { return g.Trees[y*g.Width+x] }

func (g Grid) String() string {
	var b strings.Builder
	for y := range g.Height {
		for x := range g.Width {
			b.WriteByte('0' + byte(g.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// directions are the four lines of sight: left, right, up, down.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Parse reads a rectangular grid of single digits.
func Parse(raw []byte) (Grid, error) {
	var g Grid
	for i, line := range input.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if g.Width == 0 {
			g.Width = len(line)
		} else if len(line) != g.Width {
			return Grid{}, domain.InvalidInput("day08.parse", i+1, "row has %d trees, want %d", len(line), g.Width)
		}
		for j := 0; j < len(line); j++ {
			c := line[j]
			if c < '0' || c > '9' {
				return Grid{}, domain.InvalidInput("day08.parse", i+1, "tree height %q is not a digit", c)
			}
			g.Trees = append(g.Trees, int8(c-'0'))
		}
		g.Height++
	}
	if g.Height == 0 {
		return Grid{}, domain.InvalidInput("day08.parse", 0, "empty grid")
	}
	return g, nil
}

// look walks from (x, y) in direction d. It returns how many trees are seen
// before the view is blocked (the blocking tree included) and whether the
// edge was reached without being blocked.
func (g Grid) look(x, y int, d [2]int) (seen int, clear bool) {
	h := g.At(x, y)
	for cx, cy := x+d[0], y+d[1]; cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Height; cx, cy = cx+d[0], cy+d[1] {
		seen++
		if g.At(cx, cy) >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether the tree at (x, y) can be seen from outside the grid.
func (g Grid) Visible(x, y int) bool {
	for _, d := range directions {
		if _, clear := g.look(x, y, d); clear {
			return true
		}
	}
	return false
}

// ScenicScore multiplies the viewing distances in all four directions.
func (g Grid) ScenicScore(x, y int) int {
	score := 1
	for _, d := range directions {
		seen, _ := g.look(x, y, d)
		score *= seen
	}
	return score
}

// Part1 counts trees visible from at least one edge.
func Part1(g Grid) int {
	n := 0
	for y := range g.Height {
		for x := range g.Width {
			if g.Visible(x, y) {
				n++
			}
		}
	}
	return n
}

// Part2 returns the highest scenic score in the grid.
func Part2(g Grid) int {
	best := 0
	for y := range g.Height {
		for x := range g.Width {
			best = max(best, g.ScenicScore(x, y))
		}
	}
	return best
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	g, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{
		Part1: domain.IntAnswer(Part1(g)),
		Part2: domain.IntAnswer(Part2(g)),
	}, nil
}
