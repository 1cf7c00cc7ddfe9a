// Package page renders accepted catalog records as sortable HTML listings.
//
// Each Page sorts the records by one catalog.SortAttribute and renders the
// same table with that column marked. Writer lays the pages, an index, the
// stylesheet and any extra assets into an output directory while holding a
// lock file so two runs cannot interleave their output.
package page
