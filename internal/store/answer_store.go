package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"aoc2022/internal/domain"
)

const answersFile = "answers.json"

// AnswerFileStore persists answers per (day, input digest) to disk.
type AnswerFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewAnswerFileStore returns an AnswerFileStore rooted at dir.
func NewAnswerFileStore(dir string) *AnswerFileStore {
	return &AnswerFileStore{dir: dir}
}

// Path is the journal file the store reads and writes.
func (s *AnswerFileStore) Path() string {
	return filepath.Join(s.dir, answersFile)
}

// SaveRecord stores or replaces the record for rec's day and digest.
func (s *AnswerFileStore) SaveRecord(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	records := map[string]domain.Record{}
	if err := readJSON(path, &records); err != nil {
		return storageError("store.save", path, err)
	}
	records[recordKey(rec.Day, rec.Digest)] = rec
	if err := writeJSON(path, records, 0o600); err != nil {
		return storageError("store.save", path, err)
	}
	return nil
}

// LoadRecord retrieves the record for (day, digest).
func (s *AnswerFileStore) LoadRecord(day domain.Day, digest string) (domain.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	records := map[string]domain.Record{}
	if err := readJSON(path, &records); err != nil {
		return domain.Record{}, false, storageError("store.load", path, err)
	}
	rec, ok := records[recordKey(day, digest)]
	return rec, ok, nil
}

// ListRecords returns every record ordered by day, then by recording time.
func (s *AnswerFileStore) ListRecords() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	records := map[string]domain.Record{}
	if err := readJSON(path, &records); err != nil {
		return nil, storageError("store.list", path, err)
	}
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.Before(out[j].RecordedAt)
		}
		return out[i].Digest < out[j].Digest
	})
	return out, nil
}

func recordKey(day domain.Day, digest string) string {
	return fmt.Sprintf("%s|%s", day, strings.ToLower(digest))
}

func storageError(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindStorage, Path: path, Err: err}
}

// Compile-time assertion that AnswerFileStore implements domain.AnswerStore.
var _ domain.AnswerStore = (*AnswerFileStore)(nil)
