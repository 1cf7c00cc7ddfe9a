package catalog

import (
	"regexp"
	"strings"
)

// Band is the indentation band a field was read from.
type Band int

const (
	BandTitle Band = iota
	BandAttribute
	BandDate
	BandLocation
)

func (b Band) String() string {
	switch b {
	case BandTitle:
		return "title"
	case BandAttribute:
		return "attribute"
	case BandDate:
		return "date"
	case BandLocation:
		return "location"
	default:
		return "unknown"
	}
}

// Field is one logical field: the raw lines it was assembled from and their
// trimmed contents joined by single spaces.
type Field struct {
	Band  Band
	Lines []string
	Text  string
}

var (
	// Title continuations sit at columns 19-20; attribute lines at 21-22.
	// Either may begin with punctuation but not with a further space.
	titleContinuation = regexp.MustCompile(`^ {19,20}[^ ]`)
	attributeLine     = regexp.MustCompile(`^ {21,22}[^ ]`)
	closesField       = regexp.MustCompile(`\)\s*$`)
	// A trailing attribute line is a date when it does not end in ")", or
	// ends in "(?)", or is a bare parenthesised year.
	dateLine       = regexp.MustCompile(`(?:[^)\s]|\(\?\)|^\s*\(\d{4}\))\s*$`)
	locationOpener = regexp.MustCompile(`^\s*NOW LOCATED:`)
)

// Segment regroups one item's lines into logical fields.
//
// The first line and its title-band continuations form the title field. The
// run of attribute-band lines that follows is split in two: trailing lines
// that look like dates become one date field each, and the rest are cut into
// fields after every line ending in ")". Every remaining line belongs to the
// location band, where each NOW LOCATED annotation opens a new field.
func Segment(group []string) []Field {
	if len(group) == 0 {
		return nil
	}

	rest := group[1:]
	n := countLeading(rest, titleContinuation)
	title := append([]string{group[0]}, rest[:n]...)
	rest = rest[n:]
	fields := []Field{newField(BandTitle, title)}

	n = countLeading(rest, attributeLine)
	optional := rest[:n]
	rest = rest[n:]

	d := countTrailing(optional, dateLine)
	attributes, dates := optional[:len(optional)-d], optional[len(optional)-d:]

	var current []string
	for _, line := range attributes {
		current = append(current, line)
		if closesField.MatchString(line) {
			fields = append(fields, newField(BandAttribute, current))
			current = nil
		}
	}
	if len(current) > 0 {
		fields = append(fields, newField(BandAttribute, current))
	}

	for _, line := range dates {
		fields = append(fields, newField(BandDate, []string{line}))
	}

	current = nil
	for _, line := range rest {
		if locationOpener.MatchString(line) && len(current) > 0 {
			fields = append(fields, newField(BandLocation, current))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		fields = append(fields, newField(BandLocation, current))
	}
	return fields
}

func newField(band Band, lines []string) Field {
	return Field{Band: band, Lines: lines, Text: joinTrimmed(lines)}
}

func joinTrimmed(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strings.TrimSpace(line))
	}
	return strings.Join(parts, " ")
}

func countLeading(lines []string, re *regexp.Regexp) int {
	n := 0
	for n < len(lines) && re.MatchString(lines[n]) {
		n++
	}
	return n
}

func countTrailing(lines []string, re *regexp.Regexp) int {
	n := 0
	for n < len(lines) && re.MatchString(lines[len(lines)-1-n]) {
		n++
	}
	return n
}
