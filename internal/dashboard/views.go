package dashboard

import (
	"strconv"

	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/internal/domain/model"
	"github.com/okian/judgeboard/internal/domain/scoring"
)

// ListItem is one entry of the team list.
type ListItem struct {
	Index       int          `json:"index"`
	TeamName    string       `json:"team_name"`
	Average     float64      `json:"average"`
	AverageText string       `json:"average_text"`
	Band        scoring.Band `json:"band"`
	Selected    bool         `json:"selected"`
}

// Header summarizes the selected team.
type Header struct {
	TeamName    string       `json:"team_name"`
	Domain      string       `json:"domain"`
	Average     float64      `json:"average"`
	AverageText string       `json:"average_text"`
	Band        scoring.Band `json:"band"`
	Weighted    float64      `json:"weighted_total"`
	Grade       string       `json:"grade"`
}

// Metadata holds the four evaluation cards.
type Metadata struct {
	EvaluatedAt    string `json:"evaluated_at"`
	SlidesAnalyzed int    `json:"slides_analyzed"`
	ProcessingTime string `json:"processing_time"`
	Model          string `json:"model"`
}

// ScoreRow is one labelled score with its bar.
type ScoreRow struct {
	Key       string       `json:"key"`
	Label     string       `json:"label"`
	Value     float64      `json:"value"`
	ValueText string       `json:"value_text"`
	Band      scoring.Band `json:"band"`
	Percent   float64      `json:"percent"`
}

// Scores groups criteria and overall-analysis rows.
type Scores struct {
	Criteria []ScoreRow `json:"criteria"`
	Overall  []ScoreRow `json:"overall"`
}

// Header derives the header of the selected team.
func (v *View) Header() Header {
	rec := v.Current()
	avg := scoring.Average(rec.Evaluation.CriteriaScores)
	weighted := scoring.Weighted(rec.Evaluation.CriteriaScores, v.weights)
	return Header{
		TeamName:    rec.TeamName,
		Domain:      rec.Evaluation.Metadata.Domain,
		Average:     avg,
		AverageText: v.formatter.Decimal(avg),
		Band:        scoring.Classify(avg),
		Weighted:    scoring.Round2(weighted),
		Grade:       scoring.Grade(scoring.Normalize(weighted)),
	}
}

// Metadata derives the metadata cards of the selected team.
func (v *View) Metadata() Metadata {
	md := v.Current().Evaluation.Metadata
	return Metadata{
		EvaluatedAt:    v.formatter.Timestamp(md.EvaluatedAt),
		SlidesAnalyzed: md.SlidesAnalyzed,
		ProcessingTime: v.formatter.Seconds(md.ProcessingTimeSeconds),
		Model:          format.ModelName(md.ModelName),
	}
}

// Scores derives the score rows of the selected team in document order.
// The slide count stored with the overall analysis is left out.
func (v *View) Scores() Scores {
	ev := v.Current().Evaluation
	return Scores{
		Criteria: rows(ev.CriteriaScores, v.labels.Criterion),
		Overall:  rows(ev.OverallScores(), v.labels.Overall),
	}
}

func rows(scores model.Scores, label func(string) string) []ScoreRow {
	out := make([]ScoreRow, len(scores))
	for i, sc := range scores {
		out[i] = ScoreRow{
			Key:       sc.Key,
			Label:     label(sc.Key),
			Value:     sc.Value,
			ValueText: strconv.FormatFloat(sc.Value, 'f', -1, 64) + "/10",
			Band:      scoring.Classify(sc.Value),
			Percent:   scoring.Percent(sc.Value),
		}
	}
	return out
}

// Feedback returns the three feedback lists as stored.
func (v *View) Feedback() model.DetailedFeedback {
	return v.Current().Evaluation.DetailedFeedback
}

// Summary returns the executive summary as stored.
func (v *View) Summary() string {
	return v.Current().Evaluation.ExecutiveSummary
}

// Slides returns the slide notes in stored order.
func (v *View) Slides() []model.SlideNote {
	return v.Current().Evaluation.SlideNotes
}
