package scoring

import (
	"sort"

	"github.com/okian/judgeboard/internal/domain/model"
)

// Standing is one row of the leaderboard.
type Standing struct {
	Rank       int     `json:"rank"`
	Index      int     `json:"index"`
	TeamName   string  `json:"team_name"`
	Average    float64 `json:"average"`
	Weighted   float64 `json:"weighted_total"`
	Normalized float64 `json:"normalized_score"`
	Percentile float64 `json:"percentile"`
	Grade      string  `json:"grade"`
	Band       Band    `json:"band"`
}

// Ranker orders records by weighted total.
type Ranker struct {
	weights map[string]float64
}

// NewRanker creates a Ranker. Without weights every criterion counts equally.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{weights: map[string]float64{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Weights returns a copy of the configured weights.
func (r *Ranker) Weights() map[string]float64 {
	out := make(map[string]float64, len(r.weights))
	for k, v := range r.weights {
		out[k] = v
	}
	return out
}

// Weighted computes the record's weighted total with the configured weights.
func (r *Ranker) Weighted(rec model.Record) float64 {
	return Weighted(rec.Evaluation.CriteriaScores, r.weights)
}

// Rank returns standings ordered by weighted total, highest first. Ties keep
// dataset order. Percentile is (n-rank+1)/n*100.
func (r *Ranker) Rank(records []model.Record) []Standing {
	out := make([]Standing, len(records))
	for i, rec := range records {
		weighted := Round2(r.Weighted(rec))
		avg := Average(rec.Evaluation.CriteriaScores)
		out[i] = Standing{
			Index:      i,
			TeamName:   rec.TeamName,
			Average:    avg,
			Weighted:   weighted,
			Normalized: Round2(Normalize(weighted)),
			Grade:      Grade(Normalize(weighted)),
			Band:       Classify(avg),
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Weighted > out[b].Weighted
	})

	n := float64(len(out))
	for i := range out {
		out[i].Rank = i + 1
		out[i].Percentile = Round2((n - float64(i+1) + 1) / n * 100)
	}
	return out
}
