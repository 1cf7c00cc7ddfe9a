package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterNoiseDropsBannersAndBlankLines(t *testing.T) {
	lines := []string{
		"Browse List of Johnson Sheet Music",
		"   Accession #    Title",
		"",
		"   \t ",
		titleLine,
		attr("Livingston, Ray (Composer)"),
	}

	got := FilterNoise(lines)

	assert.Equal(t, []string{titleLine, attr("Livingston, Ray (Composer)")}, got)
}

func TestSplitStartsGroupAtEachAccessionNumber(t *testing.T) {
	lines := []string{
		"stray masthead residue",
		titleLine,
		attr("Livingston, Ray (Composer)"),
		" 007.009.00008a    Sheet music: Second",
		attr("1952"),
		" Unnumbered        Sheet music: Third",
		" 123/4567          Book: Fourth",
	}

	groups := Split(lines)

	require.Len(t, groups, 4)
	assert.Equal(t, []string{titleLine, attr("Livingston, Ray (Composer)")}, groups[0])
	assert.Equal(t, []string{" 007.009.00008a    Sheet music: Second", attr("1952")}, groups[1])
	assert.Equal(t, []string{" Unnumbered        Sheet music: Third"}, groups[2])
	assert.Equal(t, []string{" 123/4567          Book: Fourth"}, groups[3])
}

func TestIsItemStart(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{titleLine, true},
		{" 07.123.456 Sheet music: x", true},
		{" Unnumbered Sheet music: x", true},
		{"007.009.00007 Sheet music: x", false},
		{"  007.009.00007 Sheet music: x", false},
		{attr("1951"), false},
		{" 7.009 Sheet music: x", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsItemStart(tt.line), "line %q", tt.line)
	}
}

func TestSplitWithoutBoundaryYieldsNothing(t *testing.T) {
	assert.Empty(t, Split([]string{attr("Livingston, Ray (Composer)")}))
	assert.Empty(t, Split(nil))
}
