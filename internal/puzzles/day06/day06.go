// Package day06 solves "Tuning Trouble": find the end of the first window of
// distinct characters in a datastream.
package day06

import (
	"strings"

	"aoc2022/internal/domain"
)

const Title = "Tuning Trouble"

const (
	PacketWindow  = 4
	MessageWindow = 14
)

// Example is the published sample.
var Example = domain.Example{
	Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n",
	Want:  domain.Answers{Part1: "7", Part2: "19"},
}

// Marker returns how many characters have been read when the first window of
// size distinct bytes is complete.
func Marker(stream string, size int) (int, error) {
	if size <= 0 {
		return 0, domain.InvalidInput("day06.marker", 0, "window size %d", size)
	}
	var seen [256]int // count of each byte inside the window
	dupes := 0
	for i := 0; i < len(stream); i++ {
		if seen[stream[i]]++; seen[stream[i]] == 2 {
			dupes++
		}
		if i >= size {
			out := stream[i-size]
			if seen[out]--; seen[out] == 1 {
				dupes--
			}
		}
		if i >= size-1 && dupes == 0 {
			return i + 1, nil
		}
	}
	return 0, domain.NoSolution("day06.marker", "no %d distinct characters in a row", size)
}

// Parse trims surrounding whitespace; the stream must be a single line.
func Parse(raw []byte) (string, error) {
	stream := strings.TrimSpace(string(raw))
	if stream == "" {
		return "", domain.InvalidInput("day06.parse", 0, "empty datastream")
	}
	if strings.ContainsAny(stream, "\r\n") {
		return "", domain.InvalidInput("day06.parse", 2, "datastream spans several lines")
	}
	return stream, nil
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	stream, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	p1, err := Marker(stream, PacketWindow)
	if err != nil {
		return domain.Answers{}, err
	}
	p2, err := Marker(stream, MessageWindow)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{Part1: domain.IntAnswer(p1), Part2: domain.IntAnswer(p2)}, nil
}
