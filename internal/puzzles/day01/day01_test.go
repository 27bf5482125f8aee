package day01

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

func TestParse(t *testing.T) {
	elves, err := Parse([]byte(Example.Input))
	require.NoError(t, err)
	require.Len(t, elves, 5)
	assert.Equal(t, []int{1000, 2000, 3000}, elves[0].Foods)
	assert.Equal(t, 6000, elves[0].Total())
	assert.Equal(t, 10000, elves[4].Total())
}

func TestLastElfWithoutTrailingBlankLine(t *testing.T) {
	elves, err := Parse([]byte("1\n\n2\n3"))
	require.NoError(t, err)
	require.Len(t, elves, 2)
	assert.Equal(t, 5, Part1(elves))
}

func TestFewerThanThreeElves(t *testing.T) {
	elves, err := Parse([]byte("100\n\n200\n"))
	require.NoError(t, err)
	assert.Equal(t, 200, Part1(elves))
	assert.Equal(t, 300, Part2(elves))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		line int
	}{
		{"empty", "", 0},
		{"blank only", "\n\n", 0},
		{"not a number", "100\nabc\n", 2},
		{"negative", "100\n\n-5\n", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.raw))
			require.Error(t, err)

			var oe *domain.OpError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, domain.KindInvalidInput, oe.Kind)
			assert.Equal(t, c.line, oe.Line)
		})
	}
}
