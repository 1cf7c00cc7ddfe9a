package catalog

import (
	"fmt"
	"strings"
)

// builder accumulates one item's fields and anomalies. It is owned by a
// single ParseItem call and discarded once finish hands back the Record.
type builder struct {
	policy      Policy
	record      Record
	hasTitle    bool
	hasLocation bool
	anomalies   []Anomaly
}

func newBuilder(policy Policy) *builder {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &builder{policy: policy}
}

func (b *builder) note(kind Kind, format string, args ...any) {
	b.anomalies = append(b.anomalies, Anomaly{
		Kind:     kind,
		Severity: b.policy.Severity(kind),
		Message:  fmt.Sprintf(format, args...),
	})
}

func (b *builder) setAccessionNumberAndTitle(number, title string) {
	if b.hasTitle {
		b.note(KindDuplicateAccessionNumber, "Duplicate accession number and title")
		return
	}
	b.hasTitle = true
	b.record.AccessionNumber = number
	b.record.Title = title
}

func (b *builder) setLocation(location string) {
	if b.hasLocation {
		b.note(KindDuplicateLocation, "Duplicate location")
		return
	}
	b.hasLocation = true
	b.record.Location = location
}

func (b *builder) addComposers(names ...string) {
	b.record.Composers = append(b.record.Composers, names...)
}

func (b *builder) addLyricists(names ...string) {
	b.record.Lyricists = append(b.record.Lyricists, names...)
}

func (b *builder) addSource(name, sourceType string) {
	b.record.SourceNames = append(b.record.SourceNames, name)
	b.record.SourceTypes = append(b.record.SourceTypes, sourceType)
}

func (b *builder) addDate(date string) {
	b.record.Dates = append(b.record.Dates, date)
}

// finish runs the cardinality checks and returns the record with every
// anomaly observed for the item.
func (b *builder) finish() (Record, []Anomaly) {
	if !b.hasTitle {
		b.note(KindNoAccessionNumber, "No accession number or title")
	}
	if len(b.record.Composers) == 0 {
		b.note(KindNoComposer, "No composer")
	}
	if len(b.record.Lyricists) == 0 {
		b.note(KindNoLyricist, "No lyricist")
	}
	if len(b.record.SourceNames) == 0 {
		b.note(KindNoSource, "No source")
	}
	if len(b.record.Dates) == 0 {
		b.note(KindNoDate, "No date")
	}
	if !b.hasLocation {
		b.note(KindNoLocation, "No location")
	}
	return b.record.clone(), b.anomalies
}

func splitNames(value string) []string {
	return strings.Split(value, " / ")
}
