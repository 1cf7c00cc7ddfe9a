package catalog

import (
	"hash/fnv"
	"slices"
)

// Record is one validated catalog entry.
//
// SourceNames and SourceTypes are parallel: entry i of SourceTypes is the
// bracketed type of source i, or "" when the source line carried no type.
type Record struct {
	AccessionNumber string   `json:"accession_number" yaml:"accession_number"`
	Title           string   `json:"title" yaml:"title"`
	Composers       []string `json:"composers" yaml:"composers"`
	Lyricists       []string `json:"lyricists" yaml:"lyricists"`
	SourceNames     []string `json:"source_names" yaml:"source_names"`
	SourceTypes     []string `json:"source_types" yaml:"source_types"`
	Dates           []string `json:"dates" yaml:"dates"`
	Location        string   `json:"location" yaml:"location"`
}

// Equal reports whether two records carry the same data.
func (r Record) Equal(other Record) bool {
	return r.AccessionNumber == other.AccessionNumber &&
		r.Title == other.Title &&
		slices.Equal(r.Composers, other.Composers) &&
		slices.Equal(r.Lyricists, other.Lyricists) &&
		slices.Equal(r.SourceNames, other.SourceNames) &&
		slices.Equal(r.SourceTypes, other.SourceTypes) &&
		slices.Equal(r.Dates, other.Dates) &&
		r.Location == other.Location
}

// Hash returns a 64-bit FNV-1a digest over every field. Equal records hash
// equally.
func (r Record) Hash() uint64 {
	h := fnv.New64a()
	writeField := func(values ...string) {
		for _, v := range values {
			_, _ = h.Write([]byte(v))
			_, _ = h.Write([]byte{0})
		}
		// separates list fields so ["a","b"],[] and ["a"],["b"] differ
		_, _ = h.Write([]byte{1})
	}
	writeField(r.AccessionNumber)
	writeField(r.Title)
	writeField(r.Composers...)
	writeField(r.Lyricists...)
	writeField(r.SourceNames...)
	writeField(r.SourceTypes...)
	writeField(r.Dates...)
	writeField(r.Location)
	return h.Sum64()
}

// Sources pairs each source name with its type.
func (r Record) Sources() []Source {
	out := make([]Source, len(r.SourceNames))
	for i, name := range r.SourceNames {
		out[i] = Source{Name: name}
		if i < len(r.SourceTypes) {
			out[i].Type = r.SourceTypes[i]
		}
	}
	return out
}

// Source is one (name, type) pair from a record.
type Source struct {
	Name string
	Type string
}

func (r Record) clone() Record {
	r.Composers = slices.Clone(r.Composers)
	r.Lyricists = slices.Clone(r.Lyricists)
	r.SourceNames = slices.Clone(r.SourceNames)
	r.SourceTypes = slices.Clone(r.SourceTypes)
	r.Dates = slices.Clone(r.Dates)
	return r
}
