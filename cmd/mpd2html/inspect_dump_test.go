package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"mpd2html/internal/catalog"
)

func TestInspectListsItemsAndSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, []string{"inspect", env.dumpPath}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if stderr != "" {
		t.Fatalf("inspect should not log item reports, got %q", stderr)
	}
	requireContains(t, out, "007.009.00007")
	requireContains(t, out, "accepted_with_warnings")
	requireContains(t, out, "No date")
	requireContains(t, out, "skipped")
	requireContains(t, out, "Summary:")
	requireContains(t, out, "[ERROR] Skipped 1 invalid items of 3 items")
	requireNotContains(t, out, "\x1b[")
}

func TestInspectProblemsOnly(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"inspect", "--problems", env.dumpPath}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireNotContains(t, out, "007.009.00007")
	requireContains(t, out, "007.009.00012")
	requireContains(t, out, "007.009.00020")
}

func TestDumpJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"dump", "--sort", "composers", env.dumpPath}, env.configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	var records []catalog.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 accepted records, got %d", len(records))
	}
	if records[0].Composers[0] != "Cobb, George L." {
		t.Fatalf("expected composer sort, got %v", records[0].Composers)
	}
	if records[1].Location != "Box 1" {
		t.Fatalf("unexpected location: %q", records[1].Location)
	}
}

func TestDumpYAMLAll(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"dump", "--format", "yaml", "--all", env.dumpPath}, env.configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	var items []catalog.Item
	if err := yaml.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[2].Status() != catalog.StatusSkipped {
		t.Fatalf("expected last item skipped, got %s", items[2].Status())
	}
	requireContains(t, out, "severity: fatal")
}

func TestDumpEmptyInputPrintsEmptyList(t *testing.T) {
	env := setupCLITestEnv(t)
	empty := filepath.Join(env.baseDir, "empty.txt")
	writeEmpty(t, empty)

	out, _, err := runCLI(t, []string{"dump", empty}, env.configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty list, got %q", out)
	}
}

func TestDumpRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"dump", "--format", "csv", env.dumpPath}, env.configPath); err == nil {
		t.Fatal("expected error for csv format")
	}
}
