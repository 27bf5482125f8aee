// Package registry lists the solved days. It is the only package that imports
// the day solutions; each solution stays a leaf.
package registry

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/day01"
	"aoc2022/internal/puzzles/day02"
	"aoc2022/internal/puzzles/day03"
	"aoc2022/internal/puzzles/day04"
	"aoc2022/internal/puzzles/day05"
	"aoc2022/internal/puzzles/day06"
	"aoc2022/internal/puzzles/day07"
	"aoc2022/internal/puzzles/day08"
)

// Catalog is an ordered, immutable set of puzzles.
type Catalog struct {
	puzzles []domain.Puzzle
	byDay   map[domain.Day]domain.Puzzle
}

// New builds a catalog from puzzles, which must be ordered by day without duplicates.
func New(puzzles ...domain.Puzzle) (*Catalog, error) {
	c := &Catalog{byDay: make(map[domain.Day]domain.Puzzle, len(puzzles))}
	for _, p := range puzzles {
		if !p.Day.Valid() {
			return nil, fmt.Errorf("registry: %d is not a calendar day", int(p.Day))
		}
		if _, dup := c.byDay[p.Day]; dup {
			return nil, fmt.Errorf("registry: %s registered twice", p.Day)
		}
		if n := len(c.puzzles); n > 0 && c.puzzles[n-1].Day > p.Day {
			return nil, fmt.Errorf("registry: %s registered after %s", p.Day, c.puzzles[n-1].Day)
		}
		c.byDay[p.Day] = p
		c.puzzles = append(c.puzzles, p)
	}
	return c, nil
}

// Default returns the catalog of every solved day.
func Default() *Catalog {
	c, err := New(
		domain.Puzzle{Day: 1, Title: day01.Title, Solve: day01.Solve, Example: day01.Example},
		domain.Puzzle{Day: 2, Title: day02.Title, Solve: day02.Solve, Example: day02.Example},
		domain.Puzzle{Day: 3, Title: day03.Title, Solve: day03.Solve, Example: day03.Example},
		domain.Puzzle{Day: 4, Title: day04.Title, Solve: day04.Solve, Example: day04.Example},
		domain.Puzzle{Day: 5, Title: day05.Title, Solve: day05.Solve, Example: day05.Example},
		domain.Puzzle{Day: 6, Title: day06.Title, Solve: day06.Solve, Example: day06.Example},
		domain.Puzzle{Day: 7, Title: day07.Title, Solve: day07.Solve, Example: day07.Example},
		domain.Puzzle{Day: 8, Title: day08.Title, Solve: day08.Solve, Example: day08.Example},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the puzzles ordered by day.
func (c *Catalog) All() []domain.Puzzle {
	out := make([]domain.Puzzle, len(c.puzzles))
	copy(out, c.puzzles)
	return out
}

// Lookup returns the puzzle registered for day.
func (c *Catalog) Lookup(day domain.Day) (domain.Puzzle, error) {
	p, ok := c.byDay[day]
	if !ok {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "registry.lookup",
			Kind: domain.KindUnknownDay,
			Err:  fmt.Errorf("%w: %s is not solved", domain.ErrUnknownDay, day),
		}
	}
	return p, nil
}

// ParseDay accepts "7", "07", "day7" and "day07".
func ParseDay(s string) (domain.Day, error) {
	digits := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(digits)
	if err != nil || !domain.Day(n).Valid() {
		return 0, &domain.OpError{
			Op:   "registry.parse_day",
			Kind: domain.KindUnknownDay,
			Err:  fmt.Errorf("%w: %q is not a day between 1 and %d", domain.ErrUnknownDay, s, domain.MaxDay),
		}
	}
	return domain.Day(n), nil
}

// Compile-time assertion that Catalog implements domain.PuzzleCatalog.
var _ domain.PuzzleCatalog = (*Catalog)(nil)
