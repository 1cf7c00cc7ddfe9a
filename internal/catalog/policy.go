package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind names one class of irregularity the parser can observe in an item.
type Kind string

const (
	KindInvalidAccessionNumber   Kind = "invalid_accession_number"
	KindFormatLabel              Kind = "format_label"
	KindComposerLabel            Kind = "composer_label"
	KindUnknownLyricist          Kind = "unknown_lyricist"
	KindNoSourceType             Kind = "no_source_type"
	KindSourceTypeOpener         Kind = "source_type_opener"
	KindSourceTypeDate           Kind = "source_type_date"
	KindSourceTypeCloser         Kind = "source_type_closer"
	KindUnparseableLine          Kind = "unparseable_line"
	KindNoAccessionNumber        Kind = "no_accession_number"
	KindDuplicateAccessionNumber Kind = "duplicate_accession_number"
	KindNoLocation               Kind = "no_location"
	KindDuplicateLocation        Kind = "duplicate_location"
	KindNoComposer               Kind = "no_composer"
	KindNoLyricist               Kind = "no_lyricist"
	KindNoSource                 Kind = "no_source"
	KindNoDate                   Kind = "no_date"
)

// Kinds lists every anomaly kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindInvalidAccessionNumber,
		KindFormatLabel,
		KindComposerLabel,
		KindUnknownLyricist,
		KindNoSourceType,
		KindSourceTypeOpener,
		KindSourceTypeDate,
		KindSourceTypeCloser,
		KindUnparseableLine,
		KindNoAccessionNumber,
		KindDuplicateAccessionNumber,
		KindNoLocation,
		KindDuplicateLocation,
		KindNoComposer,
		KindNoLyricist,
		KindNoSource,
		KindNoDate,
	}
}

// Severity decides what an anomaly does to its item.
type Severity int

const (
	// SeverityWarning keeps the item and reports the anomaly.
	SeverityWarning Severity = iota
	// SeverityFatal drops the item.
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "warning"
}

// MarshalText renders the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ErrUnknownSeverity is returned when a severity name is not recognised.
var ErrUnknownSeverity = errors.New("unknown severity")

// ErrUnknownKind is returned when a policy override names no known anomaly.
var ErrUnknownKind = errors.New("unknown anomaly kind")

// ParseSeverity maps "warning"/"warn" and "fatal"/"error" to a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "warning", "warn":
		return SeverityWarning, nil
	case "fatal", "error":
		return SeverityFatal, nil
	default:
		return SeverityWarning, fmt.Errorf("%w: %q", ErrUnknownSeverity, value)
	}
}

// Policy assigns a severity to each anomaly kind. Kinds absent from the table
// are warnings.
type Policy map[Kind]Severity

// DefaultPolicy treats the absence or repetition of a singular required field
// as fatal and everything else as a warning.
func DefaultPolicy() Policy {
	return Policy{
		KindNoAccessionNumber:        SeverityFatal,
		KindDuplicateAccessionNumber: SeverityFatal,
		KindNoLocation:               SeverityFatal,
		KindDuplicateLocation:        SeverityFatal,
	}
}

// Severity looks up the severity for kind.
func (p Policy) Severity(kind Kind) Severity {
	if s, ok := p[kind]; ok {
		return s
	}
	return SeverityWarning
}

// WithOverrides returns a copy of p with the named kinds set to the given
// severities. Keys are kind names such as "no_composer".
func (p Policy) WithOverrides(overrides map[string]string) (Policy, error) {
	out := maps.Clone(p)
	if out == nil {
		out = Policy{}
	}
	known := Kinds()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		kind := Kind(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(known, kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
		severity, err := ParseSeverity(overrides[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[kind] = severity
	}
	return out, nil
}

// Anomaly is one observed irregularity together with its resolved severity.
type Anomaly struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Fatal reports whether the anomaly drops its item.
func (a Anomaly) Fatal() bool {
	return a.Severity == SeverityFatal
}
