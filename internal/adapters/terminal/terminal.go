// Package terminal renders dashboard views as text tables.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/internal/domain/scoring"
	"github.com/olekukonko/tablewriter/pkg/twwarp"
	"golang.org/x/term"
)

// Sections of a team report.
const (
	SectionScores   = "scores"
	SectionFeedback = "feedback"
	SectionSummary  = "summary"
	SectionSlides   = "slides"
	SectionAll      = "all"

	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 120
)

// Colors for score bands.
var (
	highColor   = color.New(color.FgGreen, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgRed, color.Bold)
)

// ErrUnknownSection is returned for a section name that does not exist.
var ErrUnknownSection = fmt.Errorf("unknown section; use one of %s", strings.Join(Sections(), ", "))

// Sections lists the valid section names.
func Sections() []string {
	return []string{SectionScores, SectionFeedback, SectionSummary, SectionSlides, SectionAll}
}

// Renderer writes reports to an io.Writer.
type Renderer struct {
	w         io.Writer
	useColors bool
	width     int
	labels    *format.Labels
	formatter *format.Formatter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColors enables band colouring.
func WithColors(enabled bool) Option {
	return func(r *Renderer) { r.useColors = enabled }
}

// WithWidth overrides the detected terminal width.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithLabels sets the score labels used by the statistics report.
func WithLabels(l *format.Labels) Option {
	return func(r *Renderer) {
		if l != nil {
			r.labels = l
		}
	}
}

// WithFormatter sets the number formatter.
func WithFormatter(f *format.Formatter) Option {
	return func(r *Renderer) {
		if f != nil {
			r.formatter = f
		}
	}
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:         w,
		labels:    format.NewLabels(nil, nil),
		formatter: format.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width == 0 {
		r.width = detectWidth()
	}
	r.width = max(minWidth, min(maxWidth, r.width))
	return r
}

// detectWidth reads the stdout terminal width, falling back to 80 columns.
func detectWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Width returns the wrap width in use.
func (r *Renderer) Width() int { return r.width }

func (r *Renderer) band(b scoring.Band, text string) string {
	if !r.useColors {
		return text
	}
	switch b {
	case scoring.BandHigh:
		return highColor.Sprint(text)
	case scoring.BandMedium:
		return mediumColor.Sprint(text)
	default:
		return lowColor.Sprint(text)
	}
}

func (r *Renderer) heading(text string) {
	if r.useColors {
		text = color.New(color.Bold).Sprint(text)
	}
	_, _ = fmt.Fprintf(r.w, "\n%s\n", text)
}

// bar draws a fixed-width text progress bar for a 0-100 percentage.
func bar(percent float64, width int) string {
	filled := int(percent/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// wrap breaks text into lines of at most width terminal columns with
// minimal raggedness, keeping explicit line breaks. Words wider than width
// stay on their own line.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped, _ := twwarp.WrapString(para, width)
		lines = append(lines, wrapped...)
	}
	return lines
}
