package app

import (
	"path/filepath"

	"aoc2022/internal/domain"
)

// InputFile is the fixed file name a day reads when no path is given.
func InputFile(day domain.Day) string {
	return day.String() + ".txt"
}

// InputPath returns the default input path for day under the configured input directory.
func (w *Wire) InputPath(day domain.Day) string {
	return filepath.Join(w.InputDir, InputFile(day))
}
