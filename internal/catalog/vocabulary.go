package catalog

import (
	"regexp"
	"strings"
)

// Languages are the language names that mark a lyricist or translation line,
// as in "(French)" or "(English lyrics)".
var Languages = []string{
	"American", "English", "French", "German", "Italian", "Portuguese", "Spanish", "Svensk", "Swedish",
}

// IgnoredRoles are recognised contributor roles the catalog does not record.
var IgnoredRoles = []string{
	"Adaptation", "Adapted", "Adapted by", "Animator", "Arranged by", "Arranger", "Artist", "Author",
	"Cartoonist", "Compiled by", "Dedicated to", "Director", "Editor", "Musical Director", "Performer",
	"Photographer", "Publisher",
}

// LocationTemplates are the shelf names a NOW LOCATED annotation may carry.
// A template with a capture group yields that group as the location; one
// without yields the whole template text.
var LocationTemplates = []string{
	`(Fort Docs, Regular)`,
	`(SF PALM, Book Truck)`,
	`(SF PALM, Cataloged)`,
	`(SF PALM, Cataloging Shelf)`,
	`(SF PALM, Collection processing)`,
	`(SF PALM, NR)`,
	`(SF PALM, Shenson Research Room(?: Reference(?: [sS]helf)?)?)`,
	`(SF PALM, Shenson Research Room Rererence)`,
	`(SF PALM, Stacks Musical Theater Vocal Scores and Selections)`,
	`(SF PALM, Stacks(?: Sheet Music Reference Collection)?)`,
	`(SF PALM, Stacks Vocal Selections)`,
	`(SF PALM, Stacks Vocal Scores / Selection shelf)`,
	`(SF PALM, Stacks Vocal scores / selections shelf)`,
	`SF PALM, Johnson Sheet Music Collection\s*(.*?)`,
	`SF PALM, Shenson Research Room Johnson Rare Sheet Music\s*(.*?)`,
	`SF PALM, Stacks Johnson Anth\.\s*(.*?)`,
	`SF PALM, Stacks Johnson Book\s*(.*?)`,
	`SF PALM, Stacks Johnson Rare Sheet Music\s*(.*?)`,
	`SF PALM, Stacks Johnson Sheet Music\s*\d+\.\d+\s*(.*?)`,
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
