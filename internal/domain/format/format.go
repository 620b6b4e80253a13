// Package format turns raw evaluation values into display strings.
package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// invalidDate is shown for timestamps that cannot be represented.
const invalidDate = "Invalid Date"

// localeLayouts pairs each supported locale with its date-time layout.
// The first entry is the fallback when nothing matches.
var localeLayouts = []struct { //nolint:gochecknoglobals // fixed table
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
}

var matcher = newMatcher() //nolint:gochecknoglobals // built once from localeLayouts

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}

// Formatter formats timestamps and numbers for one locale and time zone.
// It is immutable and safe for concurrent use.
type Formatter struct {
	tag      language.Tag
	layout   string
	location *time.Location
	printer  *message.Printer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocale selects the closest supported locale for a BCP 47 tag such as
// "en-US" or "de". Unparseable tags keep the default.
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		tag, err := language.Parse(strings.TrimSpace(locale))
		if err != nil {
			return
		}
		_, idx, _ := matcher.Match(tag)
		f.tag = localeLayouts[idx].tag
		f.layout = localeLayouts[idx].layout
	}
}

// WithLocation sets the time zone used for timestamps.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// New creates a Formatter. Defaults are en-US and the local time zone.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		tag:      localeLayouts[0].tag,
		layout:   localeLayouts[0].layout,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.tag)
	return f
}

// Locale returns the matched locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Timestamp formats epoch seconds (fractional allowed) as a local date-time.
func (f *Formatter) Timestamp(epochSeconds float64) string {
	if math.IsNaN(epochSeconds) || math.IsInf(epochSeconds, 0) {
		return invalidDate
	}
	sec, frac := math.Modf(epochSeconds)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second)))
	return t.In(f.location).Format(f.layout)
}

// Decimal formats v with one decimal place using the locale's separators.
func (f *Formatter) Decimal(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

// Seconds formats a duration in seconds as e.g. "31.4s".
func (f *Formatter) Seconds(v float64) string {
	return f.Decimal(v) + "s"
}

// Integer formats n with locale digit grouping.
func (f *Formatter) Integer(n int) string {
	return f.printer.Sprintf("%d", n)
}

// ModelName keeps the first two dash-separated segments of a model
// identifier: "gemini-2.5-flash-preview-04-17" becomes "gemini-2.5".
// Names with fewer segments are returned unchanged.
func ModelName(name string) string {
	parts := strings.SplitN(name, "-", 3)
	if len(parts) < 3 {
		return name
	}
	return parts[0] + "-" + parts[1]
}
