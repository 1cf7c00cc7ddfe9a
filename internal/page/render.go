package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"mpd2html/internal/catalog"
)

//go:embed template.html
var pageTemplate string

// column is one table column. Sortable columns point at the page that sorts by them.
type column struct {
	Header string
	Page   *Page
}

var columns = []column{
	{Header: "Accession Number"},
	{Header: pages[0].Header, Page: &pages[0]},
	{Header: pages[1].Header, Page: &pages[1]},
	{Header: pages[2].Header, Page: &pages[2]},
	{Header: "Date(s)"},
	{Header: pages[3].Header, Page: &pages[3]},
	{Header: "Source Type"},
	{Header: "Location"},
}

type headerView struct {
	HTML   template.HTML
	Sorted bool
}

type pageView struct {
	Title   string
	Page    Page
	Headers []headerView
	Records []catalog.Record
}

// Renderer executes the listing template. Links are only emitted to pages in
// the rendered set so a partial run never produces dead links.
type Renderer struct {
	tmpl     *template.Template
	title    string
	rendered []Page
}

// NewRenderer parses the embedded template.
func NewRenderer(title string, rendered []Page) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{"breaks": breaks}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl, title: title, rendered: rendered}, nil
}

// Render sorts records for p and writes the page HTML to w.
func (r *Renderer) Render(w io.Writer, p Page, records []catalog.Record) error {
	view := pageView{
		Title:   r.title,
		Page:    p,
		Headers: r.headers(p),
		Records: catalog.Sort(records, p.Attribute),
	}
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render %s: %w", p.Name, err)
	}
	return nil
}

// RenderBytes is Render into a buffer.
func (r *Renderer) RenderBytes(p Page, records []catalog.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) headers(current Page) []headerView {
	out := make([]headerView, len(columns))
	for i, col := range columns {
		out[i] = headerView{HTML: r.columnHeader(col, current), Sorted: i == current.Column}
	}
	return out
}

func (r *Renderer) columnHeader(col column, current Page) template.HTML {
	text := template.HTMLEscapeString(col.Header)
	switch {
	case col.Page == nil:
		return template.HTML(text)
	case col.Page.Name == current.Name:
		return template.HTML(text + " ▽")
	case !r.isRendered(*col.Page):
		return template.HTML(text)
	default:
		return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, col.Page.FileName(), text))
	}
}

func (r *Renderer) isRendered(p Page) bool {
	for _, candidate := range r.rendered {
		if candidate.Name == p.Name {
			return true
		}
	}
	return false
}

// breaks escapes each non-empty value and joins them with line breaks.
func breaks(values []string) template.HTML {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		parts = append(parts, template.HTMLEscapeString(v))
	}
	return template.HTML(strings.Join(parts, "<br/>"))
}
