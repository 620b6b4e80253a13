package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotFound       = errors.New("team not found")
	ErrLoadDataset    = errors.New("failed to load dataset")
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrEmptyDataset   = errors.New("dataset has no records")
)
