package catalog

import (
	"regexp"
	"strings"
)

// Rule pairs the pattern for one kind of field with the handler that records
// it. Rules are tried in order and the first match wins.
type Rule struct {
	Name     string
	patterns []*regexp.Regexp
	apply    func(b *builder, m []string)
}

// Match returns the submatches of the first of the rule's patterns that
// matches text.
func (r Rule) Match(text string) ([]string, bool) {
	for _, re := range r.patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m, true
		}
	}
	return nil, false
}

const (
	RuleAccessionTitle      = "accession_title"
	RuleComposerAndLyricist = "composer_and_lyricist"
	RuleComposer            = "composer"
	RuleLyricist            = "lyricist"
	RuleSource              = "source"
	RuleIgnoredRole         = "ignored_role"
	RuleDate                = "date"
	RuleLocation            = "location"
)

var (
	canonicalAccessionNumber = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3,5}$`)
	strayComposerPrefix      = regexp.MustCompile(`(?i)^(?:\d{4}\s+|\[Photocopy\]\s+)`)
	strayYearPrefix          = regexp.MustCompile(`^\d{4}\s+`)
)

// attribute wraps the parenthesised label pattern of an attribute line so
// that group 1 captures the value before it.
func attribute(label string) *regexp.Regexp {
	return regexp.MustCompile(`^(.*?)\s*` + label + `$`)
}

var rules = buildRules()

func buildRules() []Rule {
	languages := alternation(Languages)

	locations := make([]*regexp.Regexp, len(LocationTemplates))
	for i, tmpl := range LocationTemplates {
		locations[i] = regexp.MustCompile(`^NOW LOCATED: ` + tmpl + `\s*\(\d{4}/\d{2}/\d{2}\)$`)
	}

	return []Rule{
		{
			Name: RuleAccessionTitle,
			patterns: []*regexp.Regexp{regexp.MustCompile(
				`^(` + accessionNumberPattern + `)(` + accessionSuffixPattern + `)\s+` +
					`(Sheet music|Book|Program|Sheet  music):\s*(.*?)(?:\s*\(Popular Title in \w+\))?$`)},
			apply: applyAccessionTitle,
		},
		{
			Name: RuleComposerAndLyricist,
			patterns: []*regexp.Regexp{attribute(`\((?:` +
				`Composer (?:&|and) Lyricist|` +
				`(?:Lyrics?|(?:(?:` + languages + `) )?Words) (?:&|and) Music|` +
				`Music (?:&|and) (?:Lyrics?|Words)|` +
				`Written (?:&|and) Composed` +
				`)\)`)},
			apply: applyComposerAndLyricist,
		},
		{
			Name:     RuleComposer,
			patterns: []*regexp.Regexp{attribute(`\((Composer|Company|Music)\)`)},
			apply:    applyComposer,
		},
		{
			Name: RuleLyricist,
			patterns: []*regexp.Regexp{
				attribute(`\((?:Lyricist|Additional [lL]yrics|Translation|` + languages + `)\)`),
				attribute(`\((?:` + languages + `) (?:[lL]yrics?|[lL]yricist|[tT]ext|[wW]ords|[vV]ersion)\)`),
			},
			apply: applyLyricist,
		},
		{
			Name:     RuleSource,
			patterns: []*regexp.Regexp{attribute(`(?:([\[{\]]\]?)([^\[\]}]+?)((?:\s*-\s*\d{4})?)([\[\]}])\.?\s*)?\(Source\)`)},
			apply:    applySource,
		},
		{
			Name:     RuleIgnoredRole,
			patterns: []*regexp.Regexp{attribute(`\((?:` + alternation(IgnoredRoles) + `)\)`)},
			apply:    func(*builder, []string) {},
		},
		{
			Name:     RuleDate,
			patterns: []*regexp.Regexp{regexp.MustCompile(`^(?:c?\d{4}|\(\d{4}\)|.*\(\?\))$`)},
			apply:    func(b *builder, m []string) { b.addDate(m[0]) },
		},
		{
			Name:     RuleLocation,
			patterns: locations,
			apply:    func(b *builder, m []string) { b.setLocation(m[1]) },
		},
	}
}

// Rules returns the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// MatchRule returns the first rule that matches text.
func MatchRule(text string) (Rule, []string, bool) {
	for _, rule := range rules {
		if m, ok := rule.Match(text); ok {
			return rule, m, true
		}
	}
	return Rule{}, nil, false
}

func classify(b *builder, field Field) {
	if rule, m, ok := MatchRule(field.Text); ok {
		rule.apply(b, m)
		return
	}
	switch field.Band {
	case BandDate:
		// Dates are free-form; the band alone identifies them.
		b.addDate(field.Text)
	case BandAttribute, BandLocation:
		b.note(KindUnparseableLine, `Unparseable line: "%s"`, field.Text)
	}
	// An unrecognised title line surfaces as the missing accession number.
}

func applyAccessionTitle(b *builder, m []string) {
	number, suffix, format, title := m[1], m[2], m[3], m[4]
	if b.hasTitle {
		b.setAccessionNumberAndTitle(number, title)
		return
	}
	if !canonicalAccessionNumber.MatchString(number) || suffix != "" {
		b.note(KindInvalidAccessionNumber, "Invalid accession number")
	}
	if format != "Sheet music" {
		b.note(KindFormatLabel, `"%s" instead of "Sheet music"`, format)
	}
	b.setAccessionNumberAndTitle(number, title)
}

func applyComposerAndLyricist(b *builder, m []string) {
	names := splitNames(m[1])
	b.addComposers(names...)
	b.addLyricists(names...)
}

func applyComposer(b *builder, m []string) {
	value, label := m[1], m[2]
	if label != "Composer" {
		b.note(KindComposerLabel, `"%s" instead of "Composer"`, label)
	}
	for _, name := range splitNames(value) {
		b.addComposers(strayComposerPrefix.ReplaceAllString(name, ""))
	}
}

func applyLyricist(b *builder, m []string) {
	for _, name := range splitNames(m[1]) {
		name = strayYearPrefix.ReplaceAllString(name, "")
		if strings.TrimSpace(name) == "?" {
			b.note(KindUnknownLyricist, "? lyricist")
			continue
		}
		b.addLyricists(name)
	}
}

func applySource(b *builder, m []string) {
	name, opener, sourceType, date, closer := m[1], m[2], m[3], m[4], m[5]
	if opener == "" {
		b.note(KindNoSourceType, "No source type")
	} else {
		if opener != "[" {
			b.note(KindSourceTypeOpener, "Source type not initiated by [")
		}
		if date != "" {
			b.note(KindSourceTypeDate, "Source type contains date")
		}
		if closer != "]" {
			b.note(KindSourceTypeCloser, "Source type not terminated by ]")
		}
	}
	b.addSource(name, sourceType)
}
