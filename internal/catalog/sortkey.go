package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"mpd2html/internal/textutil"
)

// SortAttribute names the dimension a listing is ordered by.
type SortAttribute string

const (
	SortByTitle       SortAttribute = "title"
	SortByComposers   SortAttribute = "composers"
	SortByLyricists   SortAttribute = "lyricists"
	SortBySourceNames SortAttribute = "source_names"
)

// SortAttributes lists the supported attributes.
func SortAttributes() []SortAttribute {
	return []SortAttribute{SortByTitle, SortByComposers, SortByLyricists, SortBySourceNames}
}

// ErrUnknownAttribute is returned for a sort attribute outside SortAttributes.
var ErrUnknownAttribute = errors.New("unknown sort attribute")

// ParseSortAttribute validates a sort attribute name.
func ParseSortAttribute(value string) (SortAttribute, error) {
	attr := SortAttribute(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(SortAttributes(), attr) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, value)
	}
	return attr, nil
}

// MissingMarker is how a missing key term renders.
const MissingMarker = "~"

// Term is one component of a sort key. A missing term orders after every
// present one, whatever its text.
type Term struct {
	Text    string
	Missing bool
}

var missing = Term{Missing: true}

func (t Term) String() string {
	if t.Missing {
		return MissingMarker
	}
	return t.Text
}

func compareTerms(a, b Term) int {
	switch {
	case a.Missing && b.Missing:
		return 0
	case a.Missing:
		return 1
	case b.Missing:
		return -1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// SortKey is an ordered tuple of segments; each segment is a list of terms.
type SortKey [][]Term

// Compare orders keys lexicographically, segment by segment and term by
// term. A segment that is a prefix of another orders first.
func (k SortKey) Compare(other SortKey) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		if c := slices.CompareFunc(k[i], other[i], compareTerms); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(k), len(other))
}

// Strings renders the key with missing terms as MissingMarker.
func (k SortKey) Strings() [][]string {
	out := make([][]string, len(k))
	for i, segment := range k {
		out[i] = make([]string, len(segment))
		for j, term := range segment {
			out[i][j] = term.String()
		}
	}
	return out
}

// SortKey derives the composite key for ordering by attr: the attribute
// itself, then title, source names, source types and the accession number,
// skipping whichever of title or source names already leads.
func (r Record) SortKey(attr SortAttribute) SortKey {
	key := SortKey{r.attributeKey(attr)}
	if attr != SortByTitle {
		key = append(key, r.titleKey())
	}
	if attr != SortBySourceNames {
		key = append(key, r.sourceNameKey())
	}
	key = append(key, r.sourceTypeKey(), []Term{{Text: r.AccessionNumber}})
	return key
}

func (r Record) attributeKey(attr SortAttribute) []Term {
	switch attr {
	case SortByComposers:
		return nameKey(r.Composers)
	case SortByLyricists:
		return nameKey(r.Lyricists)
	case SortBySourceNames:
		return r.sourceNameKey()
	default:
		return r.titleKey()
	}
}

func (r Record) titleKey() []Term {
	return []Term{titleTerm(r.Title)}
}

func (r Record) sourceNameKey() []Term {
	if len(r.SourceNames) == 0 {
		return []Term{missing}
	}
	out := make([]Term, len(r.SourceNames))
	for i, name := range r.SourceNames {
		out[i] = titleTerm(name)
	}
	return out
}

func (r Record) sourceTypeKey() []Term {
	out := make([]Term, len(r.SourceTypes))
	for i, t := range r.SourceTypes {
		if t == "" {
			out[i] = missing
			continue
		}
		out[i] = Term{Text: t}
	}
	return out
}

func titleTerm(s string) Term {
	if folded := textutil.SortableTitle(s); folded != "" {
		return Term{Text: folded}
	}
	return missing
}

func nameKey(names []string) []Term {
	if len(names) == 0 {
		return []Term{missing}
	}
	out := make([]Term, len(names))
	for i, name := range names {
		out[i] = Term{Text: textutil.SortableName(name)}
	}
	return out
}

// Sort returns a copy of records ordered by attr.
func Sort(records []Record, attr SortAttribute) []Record {
	type keyed struct {
		record Record
		key    SortKey
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{record: r, key: r.SortKey(attr)}
	}
	slices.SortStableFunc(items, func(a, b keyed) int { return a.key.Compare(b.key) })
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it.record
	}
	return out
}
