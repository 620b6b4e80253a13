package dashboard

import "github.com/okian/judgeboard/internal/domain/model"

// Snapshot is everything the dashboard shows at one point in time.
type Snapshot struct {
	SearchText    string                 `json:"search_text"`
	SelectedIndex int                    `json:"selected_index"`
	TotalTeams    int                    `json:"total_teams"`
	Teams         []ListItem             `json:"teams"`
	Header        Header                 `json:"header"`
	Metadata      Metadata               `json:"metadata"`
	Scores        Scores                 `json:"scores"`
	Feedback      model.DetailedFeedback `json:"feedback"`
	Summary       string                 `json:"executive_summary"`
	Slides        []model.SlideNote      `json:"slides"`
}

// Snapshot derives all views for the current state.
func (v *View) Snapshot() Snapshot {
	return Snapshot{
		SearchText:    v.search,
		SelectedIndex: v.selected,
		TotalTeams:    len(v.records),
		Teams:         v.Filtered(),
		Header:        v.Header(),
		Metadata:      v.Metadata(),
		Scores:        v.Scores(),
		Feedback:      v.Feedback(),
		Summary:       v.Summary(),
		Slides:        v.Slides(),
	}
}
