package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default display labels for the rubric keys.
var (
	defaultCriteriaLabels = map[string]string{ //nolint:gochecknoglobals // defaults
		"impact_scalability":          "Impact & Scalability",
		"innovation_creativity":       "Innovation & Creativity",
		"google_technologies_usage":   "Google Technologies Usage",
		"presentation_documentation":  "Presentation & Documentation",
		"technical_implementation_ux": "Technical Implementation & UX",
	}
	defaultOverallLabels = map[string]string{ //nolint:gochecknoglobals // defaults
		"consistency_score":       "Consistency Score",
		"completeness_score":      "Completeness Score",
		"presentation_flow_score": "Presentation Flow Score",
	}
)

// Labels maps score keys to display labels.
type Labels struct {
	criteria map[string]string
	overall  map[string]string
}

// NewLabels merges overrides onto the default labels. Nil maps are allowed.
func NewLabels(criteria, overall map[string]string) *Labels {
	return &Labels{
		criteria: merge(defaultCriteriaLabels, criteria),
		overall:  merge(defaultOverallLabels, overall),
	}
}

func merge(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// Criterion returns the label for a criteria key.
func (l *Labels) Criterion(key string) string {
	if v, ok := l.criteria[key]; ok {
		return v
	}
	return TitleKey(key)
}

// Overall returns the label for an overall-analysis key.
func (l *Labels) Overall(key string) string {
	if v, ok := l.overall[key]; ok {
		return v
	}
	return TitleKey(key)
}

// TitleKey turns a snake_case key into title case: "team_spirit" -> "Team Spirit".
func TitleKey(key string) string {
	words := strings.Join(strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' }), " ")
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(words)
}
