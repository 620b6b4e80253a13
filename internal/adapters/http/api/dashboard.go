package api

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/judgeboard/internal/dashboard"
	"github.com/okian/judgeboard/internal/domain/model"
	"github.com/okian/judgeboard/pkg/logger"
	"github.com/okian/judgeboard/pkg/metrics"
)

// Tabs of the detail area, in display order.
const (
	TabScores   = "scores"
	TabFeedback = "feedback"
	TabSummary  = "summary"
	TabSlides   = "slides"
)

var tabLabels = []struct{ name, label string }{ //nolint:gochecknoglobals // fixed tab order
	{TabScores, "Scores"},
	{TabFeedback, "Feedback"},
	{TabSummary, "Summary"},
	{TabSlides, "Slide Notes"},
}

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html")) //nolint:gochecknoglobals // parsed once

// DashboardHandler renders the dashboard page. The view state comes from
// the query string: q (search), team (dataset index) and tab.
type DashboardHandler struct {
	deps     ViewDependencies
	title    string
	subtitle string
	logger   logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps ViewDependencies, title, subtitle string, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{deps: deps, title: title, subtitle: subtitle, logger: log}
}

type tabLink struct {
	Label  string
	URL    string
	Active bool
}

type teamLink struct {
	dashboard.ListItem
	URL string
}

type feedbackSection struct {
	Title string
	Class string
	Items []string
}

type pageData struct {
	Title    string
	Subtitle string
	Search   string
	Tab      string
	Tabs     []tabLink
	Teams    []teamLink
	Snap     dashboard.Snapshot
	Feedback []feedbackSection
}

// HandleDashboard handles GET /dashboard requests.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	tab := q.Get("tab")
	if tab == "" {
		tab = TabScores
	}
	if !validTab(tab) {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("unknown tab "+strconv.Quote(tab))))
		return
	}

	v, err := h.deps.NewView(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	if raw := q.Get("team"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := v.SelectTeam(index); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
	}
	search := q.Get("q")
	v.SetSearchText(search)

	data := h.page(v, search, tab)
	if search != "" {
		metrics.RecordSearch(len(data.Teams))
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		metrics.RecordRenderError("dashboard")
		h.logger.Error(r.Context(), "dashboard render failed",
			logger.String("requestId", RequestID(r.Context())),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "render_error", WrapKind(op, ErrRender, err))
		return
	}
	metrics.RecordTeamView(tab)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func validTab(tab string) bool {
	for _, t := range tabLabels {
		if t.name == tab {
			return true
		}
	}
	return false
}

func (h *DashboardHandler) page(v *dashboard.View, search, tab string) pageData {
	snap := v.Snapshot()
	data := pageData{
		Title:    h.title,
		Subtitle: h.subtitle,
		Search:   search,
		Tab:      tab,
		Snap:     snap,
		Feedback: feedbackSections(snap.Feedback),
	}
	for _, t := range tabLabels {
		data.Tabs = append(data.Tabs, tabLink{
			Label:  t.label,
			URL:    dashboardURL(search, snap.SelectedIndex, t.name),
			Active: t.name == tab,
		})
	}
	for _, item := range snap.Teams {
		data.Teams = append(data.Teams, teamLink{ListItem: item, URL: dashboardURL(search, item.Index, tab)})
	}
	return data
}

func feedbackSections(fb model.DetailedFeedback) []feedbackSection {
	return []feedbackSection{
		{Title: "Strengths", Class: "strengths", Items: fb.Strengths},
		{Title: "Areas for Improvement", Class: "weaknesses", Items: fb.Weaknesses},
		{Title: "Suggestions", Class: "suggestions", Items: fb.Suggestions},
	}
}

func dashboardURL(search string, team int, tab string) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	q.Set("team", strconv.Itoa(team))
	q.Set("tab", tab)
	return "/dashboard?" + q.Encode()
}
