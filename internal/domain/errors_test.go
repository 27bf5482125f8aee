package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "day01.parse", Kind: KindInvalidInput, Line: 3, Err: root}

	require.ErrorIs(t, err, root)

	var got *OpError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, KindInvalidInput, got.Kind)
	assert.Equal(t, "day01.parse: invalid_input (line 3): root", err.Error())
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	assert.Equal(t, "<nil>", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestIsKind(t *testing.T) {
	err := InvalidInput("day04.parse", 2, "bad range %q", "3-")
	assert.True(t, IsKind(err, KindInvalidInput))
	assert.False(t, IsKind(err, KindNotFound))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, IsKind(errors.New("plain"), KindInvalidInput))

	wrapped := NoSolution("day06.part1", "no marker")
	assert.True(t, IsKind(wrapped, KindNoSolution))
	assert.ErrorIs(t, wrapped, ErrNoSolution)
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "day07", Day(7).String())
	assert.Equal(t, "day12", Day(12).String())
	assert.True(t, Day(1).Valid())
	assert.False(t, Day(0).Valid())
	assert.False(t, Day(26).Valid())
}

func TestCheckResultPassed(t *testing.T) {
	want := Answers{Part1: "1", Part2: "2"}
	assert.True(t, CheckResult{Want: want, Got: want}.Passed())
	assert.False(t, CheckResult{Want: want, Got: Answers{Part1: "1"}}.Passed())
	assert.False(t, CheckResult{Want: want, Got: want, Err: "boom"}.Passed())
}
