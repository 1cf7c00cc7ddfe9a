package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Reporter receives item outcomes and the batch summary. Warn carries
// accepted-with-warnings items and the success summary; Error carries
// skipped items and the failure summary.
type Reporter interface {
	Warn(message string)
	Error(message string)
}

type nopReporter struct{}

func (nopReporter) Warn(string)  {}
func (nopReporter) Error(string) {}

// Status is the outcome of parsing one item.
type Status string

const (
	StatusAccepted             Status = "accepted"
	StatusAcceptedWithWarnings Status = "accepted_with_warnings"
	StatusSkipped              Status = "skipped"
)

// Item is one parsed line group together with everything observed about it.
type Item struct {
	Lines     []string  `json:"lines" yaml:"lines"`
	Record    Record    `json:"record" yaml:"record"`
	Anomalies []Anomaly `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
}

// Fatal reports whether any anomaly drops the item.
func (it Item) Fatal() bool {
	for _, a := range it.Anomalies {
		if a.Fatal() {
			return true
		}
	}
	return false
}

// Status classifies the item.
func (it Item) Status() Status {
	switch {
	case it.Fatal():
		return StatusSkipped
	case len(it.Anomalies) > 0:
		return StatusAcceptedWithWarnings
	default:
		return StatusAccepted
	}
}

// Messages returns the anomaly messages, fatal ones first.
func (it Item) Messages() []string {
	out := make([]string, 0, len(it.Anomalies))
	for _, a := range it.Anomalies {
		if a.Fatal() {
			out = append(out, a.Message)
		}
	}
	for _, a := range it.Anomalies {
		if !a.Fatal() {
			out = append(out, a.Message)
		}
	}
	return out
}

// Report renders the message sent to the reporter for this item, or "" for
// a clean item.
func (it Item) Report() string {
	messages := strings.Join(it.Messages(), ". ")
	raw := strings.Join(it.Lines, "\n")
	switch it.Status() {
	case StatusSkipped:
		return fmt.Sprintf("Skipping item: %s:\n%s", messages, raw)
	case StatusAcceptedWithWarnings:
		return fmt.Sprintf("Accepting item with warnings: %s.:\n%s", messages, raw)
	default:
		return ""
	}
}

// Result is the outcome of a batch. Records holds the accepted items'
// records in input order; Total counts every item seen and Skipped the
// items dropped, so len(Records)+Skipped == Total.
type Result struct {
	Items   []Item
	Records []Record
	Total   int
	Skipped int
}

func (r *Result) add(item Item) {
	r.Items = append(r.Items, item)
	r.Total++
	if item.Fatal() {
		r.Skipped++
		return
	}
	r.Records = append(r.Records, item.Record)
}

// Summary returns the batch summary line and whether it reports a failure.
func (r Result) Summary() (string, bool) {
	if r.Skipped > 0 {
		return fmt.Sprintf("Skipped %d invalid items of %d items", r.Skipped, r.Total), true
	}
	return fmt.Sprintf("Converted %d items", r.Total), false
}

// Option configures a Parser.
type Option func(*Parser)

// WithPolicy sets the severity table.
func WithPolicy(policy Policy) Option {
	return func(p *Parser) {
		if policy != nil {
			p.policy = policy
		}
	}
}

// WithReporter sets the sink for item outcomes and the summary.
func WithReporter(reporter Reporter) Option {
	return func(p *Parser) {
		if reporter != nil {
			p.reporter = reporter
		}
	}
}

// WithEncoding sets the character set of files read by ParseFiles.
func WithEncoding(charset string) Option {
	return func(p *Parser) {
		if strings.TrimSpace(charset) != "" {
			p.encoding = charset
		}
	}
}

// Parser runs the extraction pipeline. It holds no per-batch state, so one
// Parser may be reused across batches.
type Parser struct {
	policy   Policy
	reporter Reporter
	encoding string
}

// NewParser builds a Parser with the default policy, a silent reporter and
// UTF-8 input unless options say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		policy:   DefaultPolicy(),
		reporter: nopReporter{},
		encoding: DefaultEncoding,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseItem parses the line group of one item and reports its outcome.
func (p *Parser) ParseItem(lines []string) Item {
	b := newBuilder(p.policy)
	for _, field := range Segment(lines) {
		classify(b, field)
	}
	record, anomalies := b.finish()
	item := Item{Lines: lines, Record: record, Anomalies: anomalies}

	switch item.Status() {
	case StatusSkipped:
		p.reporter.Error(item.Report())
	case StatusAcceptedWithWarnings:
		p.reporter.Warn(item.Report())
	}
	return item
}

// ParseLines parses the raw lines of one export file.
func (p *Parser) ParseLines(lines []string) Result {
	var result Result
	for _, group := range Split(FilterNoise(lines)) {
		result.add(p.ParseItem(group))
	}
	return result
}

// ParseFiles parses every file in order and reports the batch summary.
// Only I/O failures and cancellation are returned as errors; an invalid
// item is counted and skipped.
func (p *Parser) ParseFiles(ctx context.Context, paths []string) (Result, error) {
	var result Result
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		lines, err := ReadFile(path, p.encoding)
		if err != nil {
			return result, err
		}
		for _, item := range p.ParseLines(lines).Items {
			result.add(item)
		}
	}
	p.Summarize(result)
	return result, nil
}

// Summarize sends the batch summary to the reporter.
func (p *Parser) Summarize(result Result) {
	msg, failed := result.Summary()
	if failed {
		p.reporter.Error(msg)
		return
	}
	p.reporter.Warn(msg)
}
