package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mpd2html/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if CheckDirectoryAccess("test", f).Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckCreatableDirectory(t *testing.T) {
	base := t.TempDir()
	result := CheckCreatableDirectory("out", filepath.Join(base, "a", "b"))
	if !result.Passed || !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("expected creatable directory, got %+v", result)
	}

	if !CheckCreatableDirectory("out", base).Passed {
		t.Fatal("expected existing directory to pass")
	}
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "johnson.txt")
	if err := os.WriteFile(path, []byte("Browse List\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckInputFile(path); !r.Passed {
		t.Fatalf("expected readable file, got %s", r.Detail)
	}
	if r := CheckInputFile(dir); r.Passed {
		t.Fatal("expected failure for directory input")
	}
	if r := CheckInputFile(filepath.Join(dir, "missing.txt")); r.Passed {
		t.Fatal("expected failure for missing input")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil, "", nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_ChecksConfiguredPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(t.TempDir(), "site")
	cfg.Paths.LogDir = t.TempDir()
	input := filepath.Join(t.TempDir(), "dump.txt")
	if err := os.WriteFile(input, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	results := RunAll(&cfg, "", []string{input})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if err := Err(results); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestErrJoinsFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(t.TempDir(), "absent")

	err := Err(RunAll(&cfg, t.TempDir(), []string{"/nonexistent/dump.txt"}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"Assets directory", "Input dump.txt"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
