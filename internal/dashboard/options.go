package dashboard

import "github.com/okian/judgeboard/internal/domain/format"

// Option applies a configuration option to the View.
type Option func(*View)

// WithFormatter sets the timestamp and number formatter.
func WithFormatter(f *format.Formatter) Option {
	return func(v *View) {
		if f != nil {
			v.formatter = f
		}
	}
}

// WithLabels sets the score labels.
func WithLabels(l *format.Labels) Option {
	return func(v *View) {
		if l != nil {
			v.labels = l
		}
	}
}

// WithCriteriaWeights sets the weights used for the header's weighted total and grade.
func WithCriteriaWeights(weights map[string]float64) Option {
	return func(v *View) {
		v.weights = weights
	}
}
