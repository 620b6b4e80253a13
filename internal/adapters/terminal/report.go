package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/judgeboard/internal/dashboard"
	"github.com/okian/judgeboard/internal/domain/scoring"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/pkg/twwidth"
	"github.com/olekukonko/tablewriter/tw"
)

const barWidth = 20

// Teams writes the filtered team list.
func (r *Renderer) Teams(items []dashboard.ListItem, total int, search string) error {
	if search != "" {
		_, _ = fmt.Fprintf(r.w, "Teams matching %q: %d of %d\n", search, len(items), total)
	} else {
		_, _ = fmt.Fprintf(r.w, "Teams: %d\n", total)
	}
	if len(items) == 0 {
		_, _ = fmt.Fprintln(r.w, "No teams match.")
		return nil
	}

	table := tablewriter.NewWriter(r.w)
	table.Header([]string{"Index", "Team", "Average", "Band"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	data := make([][]string, 0, len(items))
	for _, it := range items {
		data = append(data, []string{
			strconv.Itoa(it.Index),
			it.TeamName,
			r.band(it.Band, it.AverageText),
			r.band(it.Band, string(it.Band)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Team writes one section (or all) of the selected team's report.
func (r *Renderer) Team(v *dashboard.View, section string) error {
	switch section {
	case SectionScores, SectionFeedback, SectionSummary, SectionSlides, SectionAll:
	default:
		return ErrUnknownSection
	}

	h := v.Header()
	md := v.Metadata()
	_, _ = fmt.Fprintf(r.w, "%s (%s)\n", h.TeamName, h.Domain)
	_, _ = fmt.Fprintf(r.w, "Overall %s  Grade %s\n", r.band(h.Band, h.AverageText), h.Grade)
	_, _ = fmt.Fprintf(r.w, "Evaluated %s | Slides %d | Processing %s | Model %s\n",
		md.EvaluatedAt, md.SlidesAnalyzed, md.ProcessingTime, md.Model)

	all := section == SectionAll
	if all || section == SectionScores {
		if err := r.scores(v.Scores()); err != nil {
			return err
		}
	}
	if all || section == SectionFeedback {
		fb := v.Feedback()
		r.list("Strengths", fb.Strengths)
		r.list("Areas for Improvement", fb.Weaknesses)
		r.list("Suggestions", fb.Suggestions)
	}
	if all || section == SectionSummary {
		r.heading("Executive Summary")
		for _, line := range wrap(v.Summary(), r.width) {
			_, _ = fmt.Fprintln(r.w, line)
		}
	}
	if all || section == SectionSlides {
		r.heading("Slide-by-Slide Analysis")
		slides := v.Slides()
		if len(slides) == 0 {
			_, _ = fmt.Fprintln(r.w, "No slide notes.")
		}
		for _, s := range slides {
			prefix := fmt.Sprintf("Slide %d: ", s.SlideNumber)
			indent := strings.Repeat(" ", twwidth.Width(prefix))
			for i, line := range wrap(s.Note, r.width-len(indent)) {
				if i == 0 {
					_, _ = fmt.Fprintln(r.w, prefix+line)
					continue
				}
				_, _ = fmt.Fprintln(r.w, indent+line)
			}
		}
	}
	return nil
}

func (r *Renderer) scores(s dashboard.Scores) error {
	for _, group := range []struct {
		title string
		rows  []dashboard.ScoreRow
	}{
		{"Evaluation Criteria Scores", s.Criteria},
		{"Overall Analysis", s.Overall},
	} {
		r.heading(group.title)
		table := tablewriter.NewWriter(r.w)
		table.Header([]string{"Criterion", "Score", "Bar"})
		data := make([][]string, 0, len(group.rows))
		for _, row := range group.rows {
			data = append(data, []string{
				row.Label,
				r.band(row.Band, row.ValueText),
				r.band(row.Band, bar(row.Percent, barWidth)),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) list(title string, items []string) {
	r.heading(title)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(r.w, "  (none)")
		return
	}
	for _, item := range items {
		for i, line := range wrap(item, r.width-4) {
			if i == 0 {
				_, _ = fmt.Fprintf(r.w, "  - %s\n", line)
				continue
			}
			_, _ = fmt.Fprintf(r.w, "    %s\n", line)
		}
	}
}

// Leaderboard writes the ranking table.
func (r *Renderer) Leaderboard(standings []scoring.Standing) error {
	table := tablewriter.NewWriter(r.w)
	table.Header([]string{"Rank", "Team", "Average", "Weighted", "Grade", "Percentile"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := make([][]string, 0, len(standings))
	for _, s := range standings {
		data = append(data, []string{
			strconv.Itoa(s.Rank),
			s.TeamName,
			r.band(s.Band, r.formatter.Decimal(s.Average)),
			fmt.Sprintf("%.2f", s.Weighted),
			s.Grade,
			fmt.Sprintf("%.2f", s.Percentile),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Stats writes the dataset summary.
func (r *Renderer) Stats(s scoring.Summary) error {
	_, _ = fmt.Fprintf(r.w, "Teams: %d\n", s.TotalTeams)
	_, _ = fmt.Fprintf(r.w, "Average score: %s (min %s, max %s)\n",
		r.band(scoring.Classify(s.AverageScore), r.formatter.Decimal(s.AverageScore)),
		r.formatter.Decimal(s.MinScore), r.formatter.Decimal(s.MaxScore))
	_, _ = fmt.Fprintf(r.w, "Average processing time: %s\n", r.formatter.Seconds(s.AverageProcessingSeconds))
	_, _ = fmt.Fprintf(r.w, "Bands: high %d, medium %d, low %d\n",
		s.BandCounts[scoring.BandHigh], s.BandCounts[scoring.BandMedium], s.BandCounts[scoring.BandLow])

	r.heading("Criteria Averages")
	table := tablewriter.NewWriter(r.w)
	table.Header([]string{"Criterion", "Average"})
	data := make([][]string, 0, len(s.CriteriaAverages))
	for _, c := range s.CriteriaAverages {
		data = append(data, []string{
			r.labels.Criterion(c.Key),
			r.band(scoring.Classify(c.Value), r.formatter.Decimal(c.Value)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
