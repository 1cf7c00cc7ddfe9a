// Package catalog turns an accessioning text dump into catalog records.
//
// The pipeline is a pure, single pass over in-memory lines: FilterNoise drops
// banner and blank lines, Split partitions the rest into one line group per
// item, Segment regroups an item's lines into logical fields by indentation
// band, and the ordered Rules table classifies each field into a builder that
// validates cardinality before handing back an immutable Record. Every
// irregularity is recorded as an Anomaly whose severity comes from a Policy
// table, so the line between "accepted with warnings" and "skipped" can be
// tuned without touching the parsing code.
//
// Parser wires the stages together for whole files and reports per-item
// outcomes and the batch summary to a Reporter. Record.SortKey and Sort derive
// the composite orderings the listing pages use.
package catalog
