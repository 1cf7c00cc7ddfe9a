package page

import (
	"fmt"
	"slices"

	"mpd2html/internal/catalog"
)

// Page is one listing, sorted by Attribute with Column marked as the sort column.
type Page struct {
	Name      string
	Attribute catalog.SortAttribute
	Column    int
	Header    string
	Canonical bool
}

// FileName is the page's file name inside the output directory.
func (p Page) FileName() string {
	return p.Name + ".html"
}

// IndexName is the file the canonical page is also written as.
const IndexName = "index.html"

var pages = []Page{
	{Name: "johnson-collection", Attribute: catalog.SortByTitle, Column: 1, Header: "Title", Canonical: true},
	{Name: "johnson-collection-by-composer", Attribute: catalog.SortByComposers, Column: 2, Header: "Composer(s)"},
	{Name: "johnson-collection-by-lyricist", Attribute: catalog.SortByLyricists, Column: 3, Header: "Lyricist(s)"},
	{Name: "johnson-collection-by-sources", Attribute: catalog.SortBySourceNames, Column: 5, Header: "Source"},
}

// Pages returns every listing page in canonical order.
func Pages() []Page {
	return slices.Clone(pages)
}

// ForAttribute returns the page sorted by attr.
func ForAttribute(attr catalog.SortAttribute) (Page, error) {
	for _, p := range pages {
		if p.Attribute == attr {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", catalog.ErrUnknownAttribute, attr)
}

// Select returns the pages for attrs in canonical order, ignoring repeats.
func Select(attrs []catalog.SortAttribute) ([]Page, error) {
	selected := make([]Page, 0, len(attrs))
	for _, attr := range attrs {
		p, err := ForAttribute(attr)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(selected, p) {
			selected = append(selected, p)
		}
	}
	slices.SortFunc(selected, func(a, b Page) int {
		return slices.Index(pages, a) - slices.Index(pages, b)
	})
	return selected, nil
}
