package day05

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/domain"
)

func TestExample(t *testing.T) {
	got, err := Solve([]byte(Example.Input))
	require.NoError(t, err)
	assert.Equal(t, Example.Want, got)
}

func TestParseDrawing(t *testing.T) {
	stacks, moves, err := Parse([]byte(Example.Input))
	require.NoError(t, err)

	want := Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}
	if diff := cmp.Diff(want, stacks); diff != "" {
		t.Fatalf("stacks mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, moves, 4)
	assert.Equal(t, Move{Line: 6, Count: 1, From: 1, To: 0}, moves[0])
}

func TestTrimmedTrailingSpaces(t *testing.T) {
	raw := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3\n\nmove 1 from 2 to 1\n"
	stacks, _, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "NDP", stacks.Tops())
}

func TestCranesKeepInputIntact(t *testing.T) {
	stacks, moves, err := Parse([]byte(Example.Input))
	require.NoError(t, err)
	before := stacks.Clone()

	_, err = Run(stacks, moves, CrateMover9000)
	require.NoError(t, err)
	if diff := cmp.Diff(before, stacks); diff != "" {
		t.Fatalf("Run mutated its input (-before +after):\n%s", diff)
	}
}

func TestMoveOntoSameStack(t *testing.T) {
	s := Stacks{[]byte("ABC")}
	require.NoError(t, CrateMover9001(s, Move{Count: 2, From: 0, To: 0}))
	assert.Equal(t, "ABC", string(s[0]))
	require.NoError(t, CrateMover9000(s, Move{Count: 2, From: 0, To: 0}))
	assert.Equal(t, "ABC", string(s[0]))
}

func TestEmptyStacksAreSkippedInTops(t *testing.T) {
	assert.Equal(t, "AC", Stacks{[]byte("A"), nil, []byte("BC")}.Tops())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no blank line", "[A]\n 1 \n"},
		{"no drawing", "\nmove 1 from 1 to 1\n"},
		{"bad label", "[A]\n 2 \n\n"},
		{"bad cell", "(A)\n 1 \n\n"},
		{"floating crate", "[A]    \n    [B]\n 1   2 \n\n"},
		{"bad move", "[A]\n 1 \n\nmove one from 1 to 1\n"},
		{"unknown stack", "[A]\n 1 \n\nmove 1 from 1 to 4\n"},
		{"too many crates", "[A]\n 1 \n\nmove 2 from 1 to 1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Solve([]byte(c.raw))
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "%v", err)
		})
	}
}
