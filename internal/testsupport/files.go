package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleDump is a three-item export: one clean item, one accepted with a
// missing date, and one skipped for lack of a location.
var SampleDump = strings.Join([]string{
	"Browse List",
	" 007.009.00007     Sheet music: I'd Like To Baby You",
	"                     Livingston, Ray (Composer)",
	"                     Evans, Ray (Lyricist)",
	"                     Aaron Slick From Punkin Crick [Film] (Source)",
	"                     1951",
	"                       NOW LOCATED: SF PALM, Johnson Sheet Music Collection Box 1 (2007/02/22)",
	"",
	" 007.009.00012     Sheet music: The Alabama Jubilee",
	"                     Cobb, George L. (Composer)",
	"                     Yellen, Jack (Lyricist)",
	"                     Hit Parade [Radio] (Source)",
	"                       NOW LOCATED: SF PALM, Johnson Sheet Music Collection Box 2 (2007/02/22)",
	"",
	" 007.009.00020     Sheet music: Zip Coon",
	"                     Dixon, George Washington (Composer)",
	"                     Anonymous (Lyricist)",
	"                     Minstrel Songs [Collection] (Source)",
	"                     1834",
	"",
}, "\n")

// WriteDump writes content to name under dir and returns the full path.
func WriteDump(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
