package app

import (
	"errors"

	"aoc2022/internal/domain"
	"aoc2022/internal/logger"
	"aoc2022/internal/registry"
	"aoc2022/internal/services/solve"
	"aoc2022/internal/store"
)

// Wire bundles the catalog, store and services for the CLI.
type Wire struct {
	Catalog  domain.PuzzleCatalog
	Answers  domain.AnswerStore
	Solver   domain.SolveService
	InputDir string
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("app: home directory required")
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "."
	}
	lg := cfg.Logger
	if lg == nil {
		lg = logger.Discard()
	}

	catalog := registry.Default()
	answers := store.NewAnswerFileStore(cfg.Home)
	solver := solve.New(catalog, answers, lg, solve.WithParallel(cfg.Parallel))

	return &Wire{
		Catalog:  catalog,
		Answers:  answers,
		Solver:   solver,
		InputDir: cfg.InputDir,
	}, nil
}
