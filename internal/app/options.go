package service

import (
	"github.com/okian/judgeboard/internal/adapters/repository"
	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore injects an already loaded store; Start then skips loading.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDatasetPath sets the dataset file. Empty keeps the embedded sample.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithCriteriaWeights sets the weights for weighted totals and grades.
func WithCriteriaWeights(weights map[string]float64) Option {
	return func(s *Service) {
		s.weights = weights
	}
}

// WithFormatter sets the display formatter.
func WithFormatter(f *format.Formatter) Option {
	return func(s *Service) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithLabels sets the score labels.
func WithLabels(l *format.Labels) Option {
	return func(s *Service) {
		if l != nil {
			s.labels = l
		}
	}
}
