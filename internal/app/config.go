package app

import "github.com/charmbracelet/log"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string      // answer store directory, e.g. $HOME/.aoc
	InputDir string      // directory holding dayNN.txt inputs
	Parallel int         // days solved at once by SolveAll
	Logger   *log.Logger // optional; defaults to a discarding logger
}
