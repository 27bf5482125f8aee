package domain

import "context"

// PuzzleCatalog resolves registered puzzles.
type PuzzleCatalog interface {
	All() []Puzzle
	Lookup(day Day) (Puzzle, error)
}

// AnswerStore persists answers keyed by day and input digest.
type AnswerStore interface {
	SaveRecord(rec Record) error
	LoadRecord(day Day, digest string) (Record, bool, error)
	ListRecords() ([]Record, error)
}

// SolveService runs puzzles against input files and examples.
type SolveService interface {
	Solve(day Day, path string) (Outcome, error)
	Record(out Outcome) error
	Check(day Day) (CheckResult, error)
	SolveAll(ctx context.Context, pathFor func(Day) string) ([]Outcome, error)
}
