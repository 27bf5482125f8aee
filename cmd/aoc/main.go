package main

import (
	"os"

	"aoc2022/cmd/aoc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
