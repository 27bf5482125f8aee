// Package app wires application dependencies for the CLI.
//
// It builds the puzzle catalog, the answer store and the solve service from
// Config, exposing them via the Wire struct for commands to use.
package app
