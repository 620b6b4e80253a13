// Package model contains the evaluation records shown by the dashboard.
// Field tags mirror the document written by the evaluation pipeline.
package model

// Keys of the overall analysis object.
const (
	KeyConsistency      = "consistency_score"
	KeyCompleteness     = "completeness_score"
	KeyPresentationFlow = "presentation_flow_score"
	// KeyTotalSlides is a count, not a score, and is never displayed.
	KeyTotalSlides = "total_slides_analyzed"
)

// Record is one team's full evaluation payload.
type Record struct {
	TeamName   string     `json:"team_name"`
	Evaluation Evaluation `json:"gemini_response"`
}

// Evaluation is the grader's response for a single presentation.
type Evaluation struct {
	Metadata         Metadata         `json:"metadata"`
	CriteriaScores   Scores           `json:"criteria_scores"`
	OverallAnalysis  Scores           `json:"overall_analysis"`
	DetailedFeedback DetailedFeedback `json:"detailed_feedback"`
	ExecutiveSummary string           `json:"executive_summary"`
	SlideNotes       []SlideNote      `json:"slide_by_slide_notes"`
}

// Metadata describes how and when a record was produced.
type Metadata struct {
	Domain                string  `json:"domain"`
	EvaluatedAt           float64 `json:"timestamp"` // seconds since epoch
	ModelName             string  `json:"gemini_model"`
	SlidesAnalyzed        int     `json:"slides_analyzed"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

// DetailedFeedback holds the narrative lists in grader order.
type DetailedFeedback struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// SlideNote annotates a single slide. Numbers are unique per record but may skip.
type SlideNote struct {
	SlideNumber int    `json:"slide"`
	Note        string `json:"note"`
}

// OverallScores returns the overall analysis without the slide count.
func (e Evaluation) OverallScores() Scores {
	return e.OverallAnalysis.Without(KeyTotalSlides)
}

// TotalSlidesAnalyzed returns the count stored alongside the overall scores.
func (e Evaluation) TotalSlidesAnalyzed() (int, bool) {
	v, ok := e.OverallAnalysis.Get(KeyTotalSlides)
	return int(v), ok
}
