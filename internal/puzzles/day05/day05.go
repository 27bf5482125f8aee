// Package day05 solves "Supply Stacks": a crate drawing followed by a list of
// crane moves.
package day05

import (
	"slices"
	"strconv"
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Supply Stacks"

const exampleInput = "" +
	"    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "CMZ", Part2: "MCD"},
}

// Stacks holds crates bottom first; index 0 is stack 1.
type Stacks [][]byte

// Clone returns a deep copy so each crane starts from the same drawing.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = slices.Clone(st)
	}
	return out
}

// Tops concatenates the top crate of every non-empty stack.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			b.WriteByte(st[len(st)-1])
		}
	}
	return b.String()
}

// Move is one crane instruction; From and To are 0-based stack indexes.
type Move struct {
	Line     int
	Count    int
	From, To int
}

// Crane applies a move to the stacks.
type Crane func(s Stacks, m Move) error

// CrateMover9000 lifts one crate at a time, reversing the moved run.
func CrateMover9000(s Stacks, m Move) error {
	if err := checkMove(s, m); err != nil {
		return err
	}
	for range m.Count {
		src := s[m.From]
		top := src[len(src)-1]
		s[m.From] = src[:len(src)-1]
		s[m.To] = append(s[m.To], top)
	}
	return nil
}

// CrateMover9001 lifts the whole run at once, keeping its order.
func CrateMover9001(s Stacks, m Move) error {
	if err := checkMove(s, m); err != nil {
		return err
	}
	src := s[m.From]
	cut := len(src) - m.Count
	run := slices.Clone(src[cut:])
	s[m.From] = src[:cut]
	s[m.To] = append(s[m.To], run...)
	return nil
}

func checkMove(s Stacks, m Move) error {
	if m.From < 0 || m.From >= len(s) || m.To < 0 || m.To >= len(s) {
		return domain.InvalidInput("day05.move", m.Line, "stack out of range 1-%d", len(s))
	}
	if m.Count > len(s[m.From]) {
		return domain.InvalidInput("day05.move", m.Line,
			"cannot move %d crates from stack %d holding %d", m.Count, m.From+1, len(s[m.From]))
	}
	return nil
}

// Parse splits the drawing from the moves at the first blank line.
func Parse(raw []byte) (Stacks, []Move, error) {
	lines := input.Lines(raw)
	sep := slices.IndexFunc(lines, func(l string) bool { return strings.TrimSpace(l) == "" })
	if sep < 1 {
		return nil, nil, domain.InvalidInput("day05.parse", 0, "want a crate drawing, a blank line and moves")
	}
	stacks, err := parseDrawing(lines[:sep])
	if err != nil {
		return nil, nil, err
	}
	moves, err := parseMoves(lines[sep+1:], sep+2)
	if err != nil {
		return nil, nil, err
	}
	return stacks, moves, nil
}

func parseDrawing(lines []string) (Stacks, error) {
	numbering := len(lines) - 1
	labels := strings.Fields(lines[numbering])
	if len(labels) == 0 {
		return nil, domain.InvalidInput("day05.parse", numbering+1, "missing stack numbers")
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, domain.InvalidInput("day05.parse", numbering+1, "stack label %q, want %d", l, i+1)
		}
	}

	stacks := make(Stacks, len(labels))
	for y := numbering - 1; y >= 0; y-- {
		row := lines[y]
		if (len(strings.TrimRight(row, " "))+1)/4 > len(stacks) {
			return nil, domain.InvalidInput("day05.parse", y+1, "row wider than %d stacks", len(stacks))
		}
		for k := range stacks {
			cell := strings.TrimRight(cellAt(row, k), " ")
			switch {
			case cell == "":
			case len(cell) == 3 && cell[0] == '[' && cell[2] == ']' && cell[1] != ' ':
				if len(stacks[k]) != numbering-1-y {
					return nil, domain.InvalidInput("day05.parse", y+1, "crate floating above stack %d", k+1)
				}
				stacks[k] = append(stacks[k], cell[1])
			default:
				return nil, domain.InvalidInput("day05.parse", y+1, "bad crate cell %q", cell)
			}
		}
	}
	return stacks, nil
}

// cellAt returns the three characters drawing stack k, padded when the row is short.
func cellAt(row string, k int) string {
	start := k * 4
	if start >= len(row) {
		return ""
	}
	return row[start:min(start+3, len(row))]
}

func parseMoves(lines []string, firstLine int) ([]Move, error) {
	var moves []Move
	for i, line := range lines {
		n := firstLine + i
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
			return nil, domain.InvalidInput("day05.parse", n, "want \"move N from A to B\", got %q", line)
		}
		count, err := input.Uint("day05.parse", n, f[1])
		if err != nil {
			return nil, err
		}
		from, err := input.Int("day05.parse", n, f[3])
		if err != nil {
			return nil, err
		}
		to, err := input.Int("day05.parse", n, f[5])
		if err != nil {
			return nil, err
		}
		moves = append(moves, Move{Line: n, Count: count, From: from - 1, To: to - 1})
	}
	return moves, nil
}

// Run applies every move with crane to a copy of stacks and returns the tops.
func Run(stacks Stacks, moves []Move, crane Crane) (string, error) {
	s := stacks.Clone()
	for _, m := range moves {
		if err := crane(s, m); err != nil {
			return "", err
		}
	}
	return s.Tops(), nil
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	stacks, moves, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	p1, err := Run(stacks, moves, CrateMover9000)
	if err != nil {
		return domain.Answers{}, err
	}
	p2, err := Run(stacks, moves, CrateMover9001)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{Part1: domain.Answer(p1), Part2: domain.Answer(p2)}, nil
}
