package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/app"
)

func TestNewWire(t *testing.T) {
	home := t.TempDir()
	w, err := app.NewWire(app.Config{Home: home, InputDir: "inputs", Parallel: 2})
	require.NoError(t, err)

	assert.Len(t, w.Catalog.All(), 8)
	assert.Equal(t, filepath.Join("inputs", "day05.txt"), w.InputPath(5))

	recs, err := w.Answers.ListRecords()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestNewWireDefaults(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "day01.txt", w.InputPath(1))

	_, err = app.NewWire(app.Config{})
	assert.Error(t, err)
}
