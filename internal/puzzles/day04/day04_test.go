package day04

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

func TestRangeRelations(t *testing.T) {
	cases := []struct {
		a, b             Range
		nested, overlaps bool
	}{
		{Range{2, 4}, Range{6, 8}, false, false},
		{Range{5, 7}, Range{7, 9}, false, true},
		{Range{2, 8}, Range{3, 7}, true, true},
		{Range{6, 6}, Range{4, 6}, true, true},
		{Range{3, 3}, Range{3, 3}, true, true},
		{Range{1, 2}, Range{3, 4}, false, false},
	}
	for _, c := range cases {
		p := Pair{First: c.a, Second: c.b}
		assert.Equal(t, c.nested, p.Nested(), "%v nested", p)
		assert.Equal(t, c.overlaps, c.a.Overlaps(c.b), "%v overlaps", p)
		assert.Equal(t, c.overlaps, c.b.Overlaps(c.a), "%v overlaps reversed", p)
	}
}

func TestParseErrors(t *testing.T) {
	for _, raw := range []string{"", "2-4\n", "2-4,6\n", "2-x,6-8\n", "4-2,6-8\n"} {
		_, err := Parse([]byte(raw))
		assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "input %q", raw)
	}
}
