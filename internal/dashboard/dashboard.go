// Package dashboard holds the state of the results dashboard and derives
// everything it displays from the selected record.
//
// A View has two pieces of state: the selected dataset index and the search
// text. Searching only filters the team list; the selected team stays on
// display even when it no longer matches. A View is not safe for concurrent
// use; build one per request or per session.
package dashboard

import (
	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/internal/domain/model"
	"github.com/okian/judgeboard/internal/domain/scoring"
)

// View is the dashboard state over an immutable dataset.
type View struct {
	records  []model.Record
	selected int
	search   string

	formatter *format.Formatter
	labels    *format.Labels
	weights   map[string]float64
}

// New creates a View with the first team selected and an empty search.
// records must not be modified afterwards.
func New(records []model.Record, opts ...Option) (*View, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	v := &View{
		records:   records,
		formatter: format.New(),
		labels:    format.NewLabels(nil, nil),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Len returns the dataset size.
func (v *View) Len() int { return len(v.records) }

// SearchText returns the current filter text.
func (v *View) SearchText() string { return v.search }

// SetSearchText replaces the filter text. The selection is left alone.
func (v *View) SetSearchText(text string) { v.search = text }

// SelectedIndex returns the dataset index of the displayed team.
func (v *View) SelectedIndex() int { return v.selected }

// SelectTeam displays the team at a dataset index. Indexes outside the
// dataset return ErrIndexOutOfRange and leave the state unchanged.
func (v *View) SelectTeam(index int) error {
	if index < 0 || index >= len(v.records) {
		return ErrIndexOutOfRange
	}
	v.selected = index
	return nil
}

// Current returns the selected record.
func (v *View) Current() model.Record { return v.records[v.selected] }

// Filtered returns the teams whose name contains the search text ignoring
// case, in dataset order, each with its dataset index.
func (v *View) Filtered() []ListItem {
	items := make([]ListItem, 0, len(v.records))
	for i, rec := range v.records {
		if !format.ContainsFold(rec.TeamName, v.search) {
			continue
		}
		avg := scoring.Average(rec.Evaluation.CriteriaScores)
		items = append(items, ListItem{
			Index:       i,
			TeamName:    rec.TeamName,
			Average:     avg,
			AverageText: v.formatter.Decimal(avg),
			Band:        scoring.Classify(avg),
			Selected:    i == v.selected,
		})
	}
	return items
}
