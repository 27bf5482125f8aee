package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/domain"
	"aoc2022/internal/registry"
)

func TestDefaultExamplesPass(t *testing.T) {
	puzzles := registry.Default().All()
	require.Len(t, puzzles, 8)

	for i, p := range puzzles {
		t.Run(p.Day.String(), func(t *testing.T) {
			assert.Equal(t, domain.Day(i+1), p.Day)
			assert.NotEmpty(t, p.Title)

			got, err := p.Solve([]byte(p.Example.Input))
			require.NoError(t, err)
			assert.Equal(t, p.Example.Want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	c := registry.Default()

	p, err := c.Lookup(7)
	require.NoError(t, err)
	assert.Equal(t, "No Space Left On Device", p.Title)

	_, err = c.Lookup(20)
	assert.True(t, domain.IsKind(err, domain.KindUnknownDay))
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	solve := func([]byte) (domain.Answers, error) { return domain.Answers{}, nil }

	_, err := registry.New(domain.Puzzle{Day: 0, Solve: solve})
	assert.Error(t, err)

	_, err = registry.New(domain.Puzzle{Day: 2, Solve: solve}, domain.Puzzle{Day: 2, Solve: solve})
	assert.Error(t, err)

	_, err = registry.New(domain.Puzzle{Day: 3, Solve: solve}, domain.Puzzle{Day: 1, Solve: solve})
	assert.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	c := registry.Default()
	all := c.All()
	all[0].Title = "changed"
	assert.Equal(t, "Calorie Counting", c.All()[0].Title)
}

func TestParseDay(t *testing.T) {
	for _, s := range []string{"7", "07", "day7", "day07", "Day07", " 7 "} {
		d, err := registry.ParseDay(s)
		require.NoError(t, err, s)
		assert.Equal(t, domain.Day(7), d, s)
	}
	for _, s := range []string{"", "0", "26", "seven", "day"} {
		_, err := registry.ParseDay(s)
		assert.True(t, domain.IsKind(err, domain.KindUnknownDay), s)
	}
}
