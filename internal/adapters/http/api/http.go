// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/judgeboard/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ViewDependencies
	LeaderboardDependencies
	StatsDependencies
}

// Server wires HTTP routes for the dashboard and its JSON API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	teamsHandler       *TeamsHandler
	leaderboardHandler *LeaderboardHandler
	dashboardHandler   *DashboardHandler
	logger             logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*serverConfig)

type serverConfig struct {
	maxLimit int
	title    string
	subtitle string
	logger   logger.Logger
}

// WithMaxLeaderboardLimit caps the leaderboard limit parameter.
func WithMaxLeaderboardLimit(n int) Option {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxLimit = n
		}
	}
}

// WithPageTitle sets the dashboard heading.
func WithPageTitle(title, subtitle string) Option {
	return func(c *serverConfig) {
		if title != "" {
			c.title = title
		}
		if subtitle != "" {
			c.subtitle = subtitle
		}
	}
}

// WithLogger sets the request logger. Defaults to the global logger.
func WithLogger(l logger.Logger) Option {
	return func(c *serverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	cfg := serverConfig{
		maxLimit: 100,
		title:    "Hackathon Evaluation Dashboard",
		subtitle: "Google Technologies Open Domain Hackathon",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Named("api")
	}
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps, statsProvider),
		teamsHandler:       NewTeamsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, cfg.maxLimit),
		dashboardHandler:   NewDashboardHandler(deps, cfg.title, cfg.subtitle, cfg.logger),
		logger:             cfg.logger,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	wrap := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(h, endpoint), s.logger)
	}

	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", wrap(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/teams", wrap(s.teamsHandler.HandleListTeams, "teams"))
	mux.HandleFunc("/teams/", wrap(s.teamsHandler.HandleGetTeam, "team"))
	mux.HandleFunc("/leaderboard", wrap(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/", wrap(handleRoot, "root"))
}

// handleRoot redirects / to the dashboard; anything else is unknown.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", NewKind("api.root", ErrNotFound))
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, RequestID: w.Header().Get(RequestIDHeader)})
}
