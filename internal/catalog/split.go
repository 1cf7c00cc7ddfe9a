package catalog

import "regexp"

const (
	accessionNumberPattern = `\d{2,4}[./]?\d{3,4}(?:[./]?\d{3,6})?|Unnumbered`
	accessionSuffixPattern = `[^\d\s]?`
)

var (
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\s*$`),
		regexp.MustCompile(`^Browse List`),
		regexp.MustCompile(`^\s*Accession`),
	}
	itemBoundary = regexp.MustCompile(`^ (?:` + accessionNumberPattern + `)` + accessionSuffixPattern + `\b`)
)

// FilterNoise drops blank lines and the report banner lines that the export
// repeats on every page.
func FilterNoise(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isNoise(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isNoise(line string) bool {
	for _, re := range noisePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Split partitions lines into one group per item. A group starts at every
// line that opens with a space and an accession number; lines before the
// first such line belong to no item and are dropped.
func Split(lines []string) [][]string {
	var groups [][]string
	for _, line := range lines {
		if IsItemStart(line) {
			groups = append(groups, []string{line})
			continue
		}
		if len(groups) == 0 {
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], line)
	}
	return groups
}

// IsItemStart reports whether line opens a new item.
func IsItemStart(line string) bool {
	return itemBoundary.MatchString(line)
}
