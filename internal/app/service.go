// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the report CLI.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/judgeboard/internal/adapters/repository"
	"github.com/okian/judgeboard/internal/dashboard"
	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/internal/domain/scoring"
	"github.com/okian/judgeboard/pkg/logger"
	"github.com/okian/judgeboard/pkg/metrics"
)

// Service owns the loaded dataset and the scoring configuration.
// Read operations are safe for concurrent use once Start has returned.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	ranker    *scoring.Ranker
	formatter *format.Formatter
	labels    *format.Labels

	// Configuration
	datasetPath string
	weights     map[string]float64

	// State
	started   bool
	source    string
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		formatter: format.New(),
		labels:    format.NewLabels(nil, nil),
		logger:    nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.ranker = scoring.NewRanker(scoring.WithCriteriaWeights(s.weights))
	return s
}

// Start loads the dataset unless a store was injected.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.store == nil {
		start := time.Now()
		store, src, err := repository.Load(ctx, repository.WithPath(s.datasetPath))
		if err != nil {
			s.logger.Error(ctx, "dataset load failed", logger.String("dataset", src), logger.Error(err))
			return fmt.Errorf("start service: %w", err)
		}
		s.store = store
		s.source = src
		s.logger.Info(ctx, "dataset loaded",
			logger.String("dataset", src),
			logger.Duration("took", time.Since(start)),
		)
	} else {
		s.source = "injected"
		metrics.UpdateDatasetTeams(s.store.Count(ctx))
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("teams", s.store.Count(ctx)),
		logger.String("locale", s.formatter.Locale()),
		logger.Int("weightedCriteria", len(s.ranker.Weights())),
	)

	return nil
}

// Stop marks the service stopped. The dataset stays in memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) ready() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Formatter returns the display formatter.
func (s *Service) Formatter() *format.Formatter { return s.formatter }

// Labels returns the score labels.
func (s *Service) Labels() *format.Labels { return s.labels }

// NewView builds a fresh dashboard view over the dataset with the first
// team selected.
func (s *Service) NewView(ctx context.Context) (*dashboard.View, error) {
	store, err := s.ready()
	if err != nil {
		return nil, err
	}
	return dashboard.New(store.All(ctx),
		dashboard.WithFormatter(s.formatter),
		dashboard.WithLabels(s.labels),
		dashboard.WithCriteriaWeights(s.ranker.Weights()),
	)
}

// FindTeam resolves a team name to its dataset index.
func (s *Service) FindTeam(ctx context.Context, name string) (int, error) {
	store, err := s.ready()
	if err != nil {
		return -1, err
	}
	i, _, err := store.Find(ctx, name)
	return i, err
}

// Leaderboard returns the top n standings. n <= 0 or larger than the
// dataset returns every team.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]scoring.Standing, error) {
	store, err := s.ready()
	if err != nil {
		return nil, err
	}
	standings := s.ranker.Rank(store.All(ctx))
	if n > 0 && n < len(standings) {
		standings = standings[:n]
	}
	metrics.RecordLeaderboard()
	s.logger.Debug(ctx, "leaderboard computed", logger.Int("limit", n), logger.Int("returned", len(standings)))
	return standings, nil
}

// Stats summarizes the dataset.
func (s *Service) Stats(ctx context.Context) (scoring.Summary, error) {
	store, err := s.ready()
	if err != nil {
		return scoring.Summary{}, err
	}
	return scoring.Summarize(store.All(ctx)), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"locale":  s.formatter.Locale(),
		"weights": s.ranker.Weights(),
	}

	if s.started {
		teams := s.store.Count(ctx)
		stats["teams"] = teams
		stats["source"] = s.source
		stats["uptimeSeconds"] = time.Since(s.startedAt).Seconds()

		metrics.UpdateDatasetTeams(teams)
	}

	return stats
}
