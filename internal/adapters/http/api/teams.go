package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/judgeboard/internal/dashboard"
	"github.com/okian/judgeboard/pkg/metrics"
)

// ViewDependencies builds dashboard views over the dataset.
type ViewDependencies interface {
	NewView(ctx context.Context) (*dashboard.View, error)
}

// TeamsHandler serves the team list and per-team detail as JSON.
type TeamsHandler struct {
	deps ViewDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps ViewDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

type teamsResponse struct {
	SearchText string               `json:"search_text"`
	TotalTeams int                  `json:"total_teams"`
	Teams      []dashboard.ListItem `json:"teams"`
}

// HandleListTeams handles GET /teams?q= requests.
func (h *TeamsHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_teams"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	v, err := h.deps.NewView(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	q := r.URL.Query().Get("q")
	v.SetSearchText(q)
	teams := v.Filtered()
	if q != "" {
		metrics.RecordSearch(len(teams))
	}
	writeJSON(w, http.StatusOK, teamsResponse{SearchText: q, TotalTeams: v.Len(), Teams: teams})
}

// HandleGetTeam handles GET /teams/{index} requests.
func (h *TeamsHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_team"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /teams/
	path := strings.TrimPrefix(r.URL.Path, "/teams/")
	index, err := strconv.Atoi(path)
	if path == "" || err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("team index must be an integer")))
		return
	}
	v, err := h.deps.NewView(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	if err := v.SelectTeam(index); err != nil {
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
		return
	}
	v.SetSearchText(r.URL.Query().Get("q"))
	metrics.RecordTeamView("all")
	writeJSON(w, http.StatusOK, v.Snapshot())
}
