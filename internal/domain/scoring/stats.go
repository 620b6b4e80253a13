package scoring

import (
	"math"

	"github.com/okian/judgeboard/internal/domain/model"
)

// Summary aggregates the dataset for the statistics view.
type Summary struct {
	TotalTeams               int          `json:"total_teams"`
	AverageScore             float64      `json:"average_score"`
	MinScore                 float64      `json:"min_score"`
	MaxScore                 float64      `json:"max_score"`
	CriteriaAverages         model.Scores `json:"criteria_averages"`
	AverageProcessingSeconds float64      `json:"average_processing_seconds"`
	BandCounts               map[Band]int `json:"band_counts"`
}

// Summarize computes team averages across the dataset. Criteria averages
// follow the rubric order of the first record; a criterion missing from a
// record does not count towards its mean.
func Summarize(records []model.Record) Summary {
	s := Summary{
		TotalTeams:       len(records),
		CriteriaAverages: model.Scores{},
		BandCounts:       map[Band]int{BandHigh: 0, BandMedium: 0, BandLow: 0},
	}
	if len(records) == 0 {
		return s
	}

	s.MinScore = math.Inf(1)
	s.MaxScore = math.Inf(-1)
	var sum, processing float64
	for _, rec := range records {
		avg := Average(rec.Evaluation.CriteriaScores)
		sum += avg
		s.MinScore = math.Min(s.MinScore, avg)
		s.MaxScore = math.Max(s.MaxScore, avg)
		s.BandCounts[Classify(avg)]++
		processing += rec.Evaluation.Metadata.ProcessingTimeSeconds
	}
	n := float64(len(records))
	s.AverageScore = sum / n
	s.AverageProcessingSeconds = processing / n

	for _, key := range records[0].Evaluation.CriteriaScores.Keys() {
		var total float64
		var count int
		for _, rec := range records {
			if v, ok := rec.Evaluation.CriteriaScores.Get(key); ok {
				total += v
				count++
			}
		}
		if count > 0 {
			s.CriteriaAverages = append(s.CriteriaAverages, model.Score{Key: key, Value: total / float64(count)})
		}
	}
	return s
}
