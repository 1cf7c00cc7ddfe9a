package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	leadingAside = regexp.MustCompile(`^\([^)]*\)\s*`)
	// An article only counts when whitespace follows it, so "Azure" and
	// "Theme" keep their leading letters.
	leadingArticle = regexp.MustCompile(`^['"$]?(?:(?:a|an|the)\s+)?['"]?`)
)

// FoldCase lower-cases s without regard to locale.
func FoldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SortableTitle returns the form of a title or source name used for
// ordering: case-folded, with one leading parenthesised aside removed and a
// leading quote, dollar sign or article stripped.
func SortableTitle(s string) string {
	s = FoldCase(strings.TrimSpace(s))
	s = leadingAside.ReplaceAllString(s, "")
	s = leadingArticle.ReplaceAllString(s, "")
	return s
}

// SortableName returns the form of a contributor name used for ordering:
// case-folded with one leading "(" removed.
func SortableName(s string) string {
	return strings.TrimPrefix(FoldCase(s), "(")
}
