package api

import (
	"context"
	"net/http"

	"github.com/okian/judgeboard/internal/domain/scoring"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsDependencies summarizes the dataset.
type StatsDependencies interface {
	Stats(ctx context.Context) (scoring.Summary, error)
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	deps          StatsDependencies
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps StatsDependencies, statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{deps: deps, statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests. With runtime=1 the service's
// runtime statistics are returned instead of the dataset summary.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if r.URL.Query().Get("runtime") == "1" {
		writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
		return
	}
	summary, err := h.deps.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
