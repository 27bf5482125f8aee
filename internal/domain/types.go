package domain

import (
	"fmt"
	"strconv"
	"time"
)

// MaxDay is the last day an Advent of Code calendar can have.
const MaxDay = 25

// Day is a puzzle day, 1 through MaxDay.
type Day int

// String returns the zero-padded form used for file names and store keys, e.g. "day07".
func (d Day) String() string { return fmt.Sprintf("day%02d", int(d)) }

// Valid reports whether d is within the calendar.
func (d Day) Valid() bool { return d >= 1 && d <= MaxDay }

// Answer is one part's result as it is printed and submitted.
type Answer string

// IntAnswer formats n in base 10.
func IntAnswer(n int) Answer { return Answer(strconv.Itoa(n)) }

// String returns the string form of the answer.
func (a Answer) String() string { return string(a) }

// Answers holds the results of both parts of a puzzle.
type Answers struct {
	Part1 Answer `json:"part1" yaml:"part1"`
	Part2 Answer `json:"part2" yaml:"part2"`
}

// Example is a puzzle's published sample input and the answers it should produce.
type Example struct {
	Input string
	Want  Answers
}

// SolveFunc parses raw input and computes both answers.
type SolveFunc func(input []byte) (Answers, error)

// Puzzle is one registered day.
type Puzzle struct {
	Day     Day
	Title   string
	Solve   SolveFunc
	Example Example
}

// Record is a stored set of answers for one input, identified by its digest.
type Record struct {
	Day        Day       `json:"day" yaml:"day"`
	Digest     string    `json:"digest" yaml:"digest"`
	Answers    Answers   `json:"answers" yaml:"answers"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// Status describes how a fresh result compares with what was recorded.
type Status string

const (
	StatusNew      Status = "new"
	StatusVerified Status = "verified"
	StatusMismatch Status = "mismatch"
	StatusMissing  Status = "missing"
)

// Outcome is the result of solving one day against one input file.
type Outcome struct {
	Day      Day           `json:"day" yaml:"day"`
	Title    string        `json:"title" yaml:"title"`
	Path     string        `json:"path" yaml:"path"`
	Digest   string        `json:"digest,omitempty" yaml:"digest,omitempty"`
	Answers  Answers       `json:"answers" yaml:"answers"`
	Status   Status        `json:"status" yaml:"status"`
	Recorded *Answers      `json:"recorded,omitempty" yaml:"recorded,omitempty"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
}

// CheckResult compares a puzzle's example answers with what its solver produced.
type CheckResult struct {
	Day   Day     `json:"day" yaml:"day"`
	Title string  `json:"title" yaml:"title"`
	Want  Answers `json:"want" yaml:"want"`
	Got   Answers `json:"got" yaml:"got"`
	Err   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Passed reports whether both parts matched and the solver did not fail.
func (c CheckResult) Passed() bool {
	return c.Err == "" && c.Got == c.Want
}
