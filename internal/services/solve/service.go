package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"aoc2022/internal/crypto"
	"aoc2022/internal/domain"
)

// Service solves puzzles from a catalog and checks them against an answer store.
type Service struct {
	catalog  domain.PuzzleCatalog
	store    domain.AnswerStore
	log      *log.Logger
	parallel int
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithParallel bounds how many days SolveAll runs at once.
func WithParallel(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.parallel = n
		}
	}
}

// WithClock replaces time.Now for recorded timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a solve service. A nil logger discards output.
func New(catalog domain.PuzzleCatalog, store domain.AnswerStore, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{
		catalog:  catalog,
		store:    store,
		log:      logger,
		parallel: 1,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve reads path and computes day's answers.
func (s *Service) Solve(day domain.Day, path string) (domain.Outcome, error) {
	p, err := s.catalog.Lookup(day)
	if err != nil {
		return domain.Outcome{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindInvalidInput
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Outcome{}, &domain.OpError{Op: "solve.read", Kind: kind, Path: path, Err: err}
	}

	out := domain.Outcome{
		Day:    day,
		Title:  p.Title,
		Path:   path,
		Digest: crypto.Digest(raw),
	}
	s.log.Debug("solving", "day", day, "path", path, "bytes", len(raw), "digest", out.Digest)

	start := time.Now()
	answers, err := p.Solve(raw)
	out.Elapsed = time.Since(start)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return domain.Outcome{}, fmt.Errorf("%s: %w", day, err)
	}
	out.Answers = answers
	s.log.Debug("solved", "day", day, "elapsed", out.Elapsed)

	if err := s.compare(&out); err != nil {
		return domain.Outcome{}, err
	}
	return out, nil
}

// compare sets the outcome status from the store.
func (s *Service) compare(out *domain.Outcome) error {
	rec, ok, err := s.store.LoadRecord(out.Day, out.Digest)
	if err != nil {
		return err
	}
	switch {
	case !ok || !crypto.SameDigest(rec.Digest, out.Digest):
		out.Status = domain.StatusNew
	case rec.Answers == out.Answers:
		out.Status = domain.StatusVerified
	default:
		out.Status = domain.StatusMismatch
		recorded := rec.Answers
		out.Recorded = &recorded
		s.log.Warn("answers differ from record",
			"day", out.Day,
			"digest", out.Digest,
			"recorded", fmt.Sprintf("%s / %s", rec.Answers.Part1, rec.Answers.Part2),
			"got", fmt.Sprintf("%s / %s", out.Answers.Part1, out.Answers.Part2),
		)
	}
	return nil
}

// Record stores out's answers for its digest, replacing any earlier record.
func (s *Service) Record(out domain.Outcome) error {
	if out.Digest == "" {
		return errors.New("record: outcome has no input digest")
	}
	rec := domain.Record{
		Day:        out.Day,
		Digest:     out.Digest,
		Answers:    out.Answers,
		RecordedAt: s.now().UTC(),
	}
	if err := s.store.SaveRecord(rec); err != nil {
		return err
	}
	s.log.Info("recorded answers", "day", out.Day, "digest", out.Digest)
	return nil
}

// Check runs day's embedded example.
func (s *Service) Check(day domain.Day) (domain.CheckResult, error) {
	p, err := s.catalog.Lookup(day)
	if err != nil {
		return domain.CheckResult{}, err
	}
	res := domain.CheckResult{Day: day, Title: p.Title, Want: p.Example.Want}
	got, err := p.Solve([]byte(p.Example.Input))
	if err != nil {
		res.Err = err.Error()
	}
	res.Got = got
	if !res.Passed() {
		s.log.Warn("example failed", "day", day, "err", res.Err)
	}
	return res, nil
}

// SolveAll solves every catalog day with the input pathFor returns. Days
// without an input file are reported as missing; any other failure cancels
// the remaining days and is returned.
func (s *Service) SolveAll(ctx context.Context, pathFor func(domain.Day) string) ([]domain.Outcome, error) {
	puzzles := s.catalog.All()
	outs := make([]domain.Outcome, len(puzzles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)

	for i, p := range puzzles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := pathFor(p.Day)
			out, err := s.Solve(p.Day, path)
			if domain.IsKind(err, domain.KindNotFound) {
				s.log.Debug("no input", "day", p.Day, "path", path)
				outs[i] = domain.Outcome{Day: p.Day, Title: p.Title, Path: path, Status: domain.StatusMissing}
				return nil
			}
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}

// Compile-time assertion that Service implements domain.SolveService.
var _ domain.SolveService = (*Service)(nil)
