package catalog

import "strings"

var (
	attrIndent     = strings.Repeat(" ", 21)
	locationIndent = strings.Repeat(" ", 23)
)

const (
	titleLine    = " 007.009.00007     Sheet music: I'd Like To Baby You"
	locationText = "NOW LOCATED: SF PALM, Johnson Sheet Music Collection Box 1 (2007/02/22)"
)

func attr(text string) string { return attrIndent + text }

func located(text string) string { return locationIndent + text }

// babyYou is the reference item used throughout the tests.
func babyYou() []string {
	return []string{
		titleLine,
		attr("Livingston, Ray (Composer)"),
		attr("Evans, Ray (Lyricist)"),
		attr("Aaron Slick From Punkin Crick [Film] (Source)"),
		attr("1951"),
		located(locationText),
	}
}

// withAttributes returns the reference item with the attribute block replaced.
func withAttributes(attributes ...string) []string {
	lines := []string{titleLine}
	for _, a := range attributes {
		lines = append(lines, attr(a))
	}
	return append(lines, located(locationText))
}

type recordingReporter struct {
	warnings []string
	errors   []string
}

func (r *recordingReporter) Warn(message string)  { r.warnings = append(r.warnings, message) }
func (r *recordingReporter) Error(message string) { r.errors = append(r.errors, message) }
