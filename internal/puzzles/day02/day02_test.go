package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/domain"
)

func TestExample(t *testing.T) {
	got, err := Solve([]byte(Example.Input))
	require.NoError(t, err)
	assert.Equal(t, Example.Want, got)
}

func TestPlay(t *testing.T) {
	cases := []struct {
		them, me Shape
		want     Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Paper, Win},
		{Rock, Scissors, Lose},
		{Paper, Scissors, Win},
		{Paper, Rock, Lose},
		{Scissors, Rock, Win},
		{Scissors, Paper, Lose},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Play(c.them, c.me), "%s vs %s", c.me, c.them)
	}
}

func TestRespond(t *testing.T) {
	for _, them := range []Shape{Rock, Paper, Scissors} {
		for _, want := range []Outcome{Lose, Draw, Win} {
			me := Respond(them, want)
			assert.Equal(t, want, Play(them, me), "respond to %s", them)
		}
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 8, Score(Rock, Paper))
	assert.Equal(t, 1, Score(Paper, Rock))
	assert.Equal(t, 6, Score(Scissors, Scissors))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		line int
	}{
		{"empty", "", 0},
		{"one column", "A Y\nB\n", 2},
		{"bad opponent", "D Y\n", 1},
		{"bad response", "A W\n", 1},
		{"long token", "AA Y\n", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.raw))
			var oe *domain.OpError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, domain.KindInvalidInput, oe.Kind)
			assert.Equal(t, c.line, oe.Line)
		})
	}
}
