package scoring

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithCriteriaWeights sets per-criterion weights for the weighted total.
// Negative weights are dropped.
func WithCriteriaWeights(weights map[string]float64) Option {
	return func(r *Ranker) {
		// Copy the weights map to avoid external modifications
		r.weights = make(map[string]float64, len(weights))
		for key, w := range weights {
			if w >= 0 {
				r.weights[key] = w
			}
		}
	}
}
