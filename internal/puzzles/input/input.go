// Package input holds the small line-splitting and number-parsing helpers the
// day solutions share. Errors carry the 1-based line number they refer to.
package input

import (
	"strconv"
	"strings"

	"aoc2022/internal/domain"
)

// Lines splits raw input on newlines, stripping carriage returns and the single
// empty element produced by a trailing newline.
func Lines(raw []byte) []string {
	s := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Block is a run of consecutive non-blank lines; Start is the 1-based line
// number of its first line.
type Block struct {
	Start int
	Lines []string
}

// Blocks groups lines into blank-line separated blocks. Consecutive blank
// lines do not produce empty blocks.
func Blocks(lines []string) []Block {
	var (
		out []Block
		cur *Block
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Block{Start: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}
	return out
}

// Int parses s as a base-10 integer; line is used only for the error.
func Int(op string, line int, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, domain.InvalidInput(op, line, "%q is not a number", s)
	}
	return n, nil
}

// Uint is Int restricted to values >= 0.
func Uint(op string, line int, s string) (int, error) {
	n, err := Int(op, line, s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, domain.InvalidInput(op, line, "%d must not be negative", n)
	}
	return n, nil
}
