// Package repository loads the evaluation dataset and serves it read-only.
package repository

import (
	"context"

	"github.com/okian/judgeboard/internal/domain/model"
)

// Store provides read access to the loaded evaluation records.
// Records are in dataset order and never change after loading.
type Store interface {
	// All returns every record in dataset order.
	All(ctx context.Context) []model.Record

	// Get returns the record at index.
	// Returns ErrNotFound if the index is outside the dataset.
	Get(ctx context.Context, index int) (model.Record, error)

	// Find returns the index and record for a team name. An exact match wins;
	// otherwise names are compared ignoring case.
	// Returns ErrNotFound if no team matches.
	Find(ctx context.Context, teamName string) (int, model.Record, error)

	// Count returns the number of records.
	Count(ctx context.Context) int
}
