package repository

import (
	"context"

	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/internal/domain/model"
)

// MemoryStore keeps the dataset in memory. It is immutable after
// construction and safe for concurrent readers.
type MemoryStore struct {
	records []model.Record
	byName  map[string]int
	byFold  map[string]int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore checks records against the dataset invariants and wraps them.
func NewMemoryStore(records []model.Record) (*MemoryStore, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	s := &MemoryStore{
		records: records,
		byName:  make(map[string]int, len(records)),
		byFold:  make(map[string]int, len(records)),
	}
	for i, rec := range records {
		s.byName[rec.TeamName] = i
		folded := format.Fold(rec.TeamName)
		if _, seen := s.byFold[folded]; !seen {
			s.byFold[folded] = i
		}
	}
	return s, nil
}

// All implements Store.All. The returned slice is a copy; the records it
// holds share their backing arrays with the store and must not be modified.
func (s *MemoryStore) All(_ context.Context) []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get implements Store.Get.
func (s *MemoryStore) Get(_ context.Context, index int) (model.Record, error) {
	if index < 0 || index >= len(s.records) {
		return model.Record{}, ErrNotFound
	}
	return s.records[index], nil
}

// Find implements Store.Find.
func (s *MemoryStore) Find(_ context.Context, teamName string) (int, model.Record, error) {
	if i, ok := s.byName[teamName]; ok {
		return i, s.records[i], nil
	}
	if i, ok := s.byFold[format.Fold(teamName)]; ok {
		return i, s.records[i], nil
	}
	return -1, model.Record{}, ErrNotFound
}

// Count implements Store.Count.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.records)
}
