package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/domain"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb", []string{"a", "", "b"}},
		{"only one trailing blank dropped", "a\n\n", []string{"a", ""}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Lines([]byte(c.raw)))
		})
	}
}

func TestBlocks(t *testing.T) {
	lines := []string{"", "1", "2", "", "", "3", "  ", "4", "5"}
	got := Blocks(lines)

	require.Len(t, got, 3)
	assert.Equal(t, Block{Start: 2, Lines: []string{"1", "2"}}, got[0])
	assert.Equal(t, Block{Start: 6, Lines: []string{"3"}}, got[1])
	assert.Equal(t, Block{Start: 8, Lines: []string{"4", "5"}}, got[2])
}

func TestInt(t *testing.T) {
	n, err := Int("op", 1, " 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Int("op", 7, "4x")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Contains(t, err.Error(), "line 7")
}

func TestUint(t *testing.T) {
	n, err := Uint("op", 1, "0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = Uint("op", 2, "-1")
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}
