package repository

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okian/judgeboard/internal/domain/model"
)

// Validate checks the invariants the dashboard relies on: at least one
// record, unique non-empty team names, one criteria key set shared by all
// records and unique slide numbers within a record.
func Validate(records []model.Record) error {
	if len(records) == 0 {
		return ErrEmptyDataset
	}

	rubric := sortedKeys(records[0].Evaluation.CriteriaScores)
	names := make(map[string]int, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.TeamName) == "" {
			return fmt.Errorf("%w: record %d has an empty team_name", ErrInvalidDataset, i)
		}
		if prev, dup := names[rec.TeamName]; dup {
			return fmt.Errorf("%w: team %q appears at records %d and %d", ErrInvalidDataset, rec.TeamName, prev, i)
		}
		names[rec.TeamName] = i

		if keys := sortedKeys(rec.Evaluation.CriteriaScores); !slices.Equal(keys, rubric) {
			return fmt.Errorf("%w: team %q criteria %v differ from %v", ErrInvalidDataset, rec.TeamName, keys, rubric)
		}

		slides := make(map[int]struct{}, len(rec.Evaluation.SlideNotes))
		for _, n := range rec.Evaluation.SlideNotes {
			if _, dup := slides[n.SlideNumber]; dup {
				return fmt.Errorf("%w: team %q has slide %d more than once", ErrInvalidDataset, rec.TeamName, n.SlideNumber)
			}
			slides[n.SlideNumber] = struct{}{}
		}
	}
	return nil
}

func sortedKeys(s model.Scores) []string {
	keys := s.Keys()
	slices.Sort(keys)
	return keys
}
