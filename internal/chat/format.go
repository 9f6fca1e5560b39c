package chat

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter renders messages as display rows: "<Day> @ <HH:MM>  > <content>".
type Formatter struct {
	loc   *time.Location
	lower cases.Caser
	title cases.Caser
}

// NewFormatter returns a Formatter that converts timestamps to loc and cases the
// weekday abbreviation for tag. A nil loc means time.Local.
func NewFormatter(loc *time.Location, tag language.Tag) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{loc: loc, lower: cases.Lower(tag), title: cases.Title(tag)}
}

// Format returns the display row for m.
func (f *Formatter) Format(m Message) string {
	t := m.Timestamp().In(f.loc)
	return f.Day(t) + " @ " + t.Format("15:04") + "  > " + m.Content()
}

// Day returns the three letter weekday abbreviation of t, e.g. "Mon". The
// English name is lower-cased and then title-cased with the formatter's locale.
func (f *Formatter) Day(t time.Time) string {
	name := strings.ToUpper(t.Weekday().String())
	if len(name) > 3 {
		name = name[:3]
	}
	return f.title.String(f.lower.String(name))
}

// Location returns the zone timestamps are converted to.
func (f *Formatter) Location() *time.Location {
	return f.loc
}
