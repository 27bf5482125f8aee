// Package day02 solves "Rock Paper Scissors" from an encrypted strategy guide.
package day02

import (
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "Rock Paper Scissors"

// Example is the published sample.
var Example = domain.Example{
	Input: "A Y\nB X\nC Z\n",
	Want:  domain.Answers{Part1: "15", Part2: "12"},
}

// Shape is a hand shape; its value is also its score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Beats returns the shape s defeats.
func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the shape that defeats s.
func (s Shape) LosesTo() Shape {
	return s.Beats().Beats()
}

// Outcome is the result of a round from the player's side; its value is its score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Play returns the outcome of me against them.
func Play(them, me Shape) Outcome {
	switch {
	case me == them:
		return Draw
	case me.Beats() == them:
		return Win
	default:
		return Lose
	}
}

// Respond picks the shape that produces want against them.
func Respond(them Shape, want Outcome) Shape {
	switch want {
	case Draw:
		return them
	case Win:
		return them.LosesTo()
	default:
		return them.Beats()
	}
}

// Round is one line of the guide. Column is the raw second column, 0 for X up to 2 for Z.
type Round struct {
	Them   Shape
	Column int
}

// Parse reads one round per non-empty line.
func Parse(raw []byte) ([]Round, error) {
	var rounds []Round
	for i, line := range input.Lines(raw) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			return nil, domain.InvalidInput("day02.parse", i+1, "want two single-letter columns, got %q", line)
		}
		them := fields[0][0]
		col := fields[1][0]
		if them < 'A' || them > 'C' {
			return nil, domain.InvalidInput("day02.parse", i+1, "opponent move %q not in A-C", them)
		}
		if col < 'X' || col > 'Z' {
			return nil, domain.InvalidInput("day02.parse", i+1, "response %q not in X-Z", col)
		}
		rounds = append(rounds, Round{Them: Shape(them-'A') + 1, Column: int(col - 'X')})
	}
	if len(rounds) == 0 {
		return nil, domain.InvalidInput("day02.parse", 0, "no rounds")
	}
	return rounds, nil
}

// Score is the shape score plus the outcome score.
func Score(them, me Shape) int {
	return int(me) + int(Play(them, me))
}

// Part1 reads the second column as the shape to play.
func Part1(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(r.Them, Shape(r.Column+1))
	}
	return total
}

// Part2 reads the second column as the outcome to reach.
func Part2(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		want := Outcome(r.Column * 3)
		total += Score(r.Them, Respond(r.Them, want))
	}
	return total
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	rounds, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{
		Part1: domain.IntAnswer(Part1(rounds)),
		Part2: domain.IntAnswer(Part2(rounds)),
	}, nil
}
