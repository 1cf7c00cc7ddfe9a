package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mpd2html/internal/config"
)

func newTestConsole(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)
	return slog.New(newPrettyHandler(buf, lv, false))
}

func TestPrettyHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewComponentLogger(newTestConsole(&buf, slog.LevelInfo), "render")

	logger.Info("page written", slog.String(FieldPage, "johnson-collection"), slog.Int("records", 3))

	out := buf.String()
	if !strings.Contains(out, "INFO [render] – page written\n") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "    - page: johnson-collection\n") {
		t.Errorf("missing page attr: %q", out)
	}
	if !strings.Contains(out, "    - records: 3\n") {
		t.Errorf("missing records attr: %q", out)
	}
	if strings.Contains(out, "component:") {
		t.Errorf("component should be folded into header: %q", out)
	}
}

func TestPrettyHandlerKeepsMultilineMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsole(&buf, slog.LevelInfo)

	logger.Error("Skipping item: No location:\n 007.009.00007     Sheet music: A")

	if !strings.Contains(buf.String(), "Skipping item: No location:\n 007.009.00007     Sheet music: A\n") {
		t.Fatalf("message lines altered: %q", buf.String())
	}
}

func TestPrettyHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	newTestConsole(&buf, slog.LevelInfo).Info("x", slog.String("title", "Baby, you"), slog.String("empty", ""))

	if !strings.Contains(buf.String(), `- title: "Baby, you"`) {
		t.Errorf("expected quoted title: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `- empty: ""`) {
		t.Errorf("expected quoted empty value: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	slog.New(newJSONHandler(&buf, lv, false)).Warn("accepted with warnings", slog.String(FieldRunID, "abc"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["level"] != "warn" || payload["msg"] != "accepted with warnings" || payload["run_id"] != "abc" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Errorf("missing ts key: %v", payload)
	}
}

func TestReporterDropsWarningsUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewReporter(newTestConsole(&buf, slog.LevelDebug), false)
	quiet.Warn("Accepting item with warnings: No date.:\n line")
	quiet.Error("Skipped 1 invalid items of 2 items")

	out := buf.String()
	if strings.Contains(out, "Accepting item") {
		t.Errorf("warning leaked without verbose: %q", out)
	}
	if !strings.Contains(out, "ERROR [parser] – Skipped 1 invalid items of 2 items") {
		t.Errorf("missing error line: %q", out)
	}

	buf.Reset()
	loud := NewReporter(newTestConsole(&buf, slog.LevelInfo), true)
	loud.Warn("Converted 2 items")
	if !strings.Contains(buf.String(), "WARN [parser] – Converted 2 items") {
		t.Errorf("verbose warning missing: %q", buf.String())
	}
}

func TestWithLevelOverrideReplacesExistingOverride(t *testing.T) {
	var buf bytes.Buffer
	base := newTestConsole(&buf, slog.LevelDebug)

	strict := WithLevelOverride(base, slog.LevelError)
	relaxed := WithLevelOverride(strict, slog.LevelInfo)

	strict.Warn("hidden")
	relaxed.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("strict logger emitted warning: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("relaxed logger dropped info: %q", buf.String())
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var jsonBuf, consoleBuf bytes.Buffer
	ctx := WithRunID(t.Context(), "run-42")
	base := withRunLog(newTestConsole(&consoleBuf, slog.LevelInfo), newJSONHandler(&jsonBuf, new(slog.LevelVar), false))
	WithContext(ctx, base).Info("start")

	if !strings.Contains(jsonBuf.String(), `"run_id":"run-42"`) {
		t.Fatalf("missing run id: %q", jsonBuf.String())
	}
	if strings.Contains(consoleBuf.String(), "run-42") {
		t.Errorf("console should not show run id: %q", consoleBuf.String())
	}
	if _, ok := RunIDFromContext(t.Context()); ok {
		t.Error("expected no run id on a bare context")
	}
}

func TestNewFromConfigWritesRunLog(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Paths.LogDir = dir

	var console bytes.Buffer
	logger, logPath, err := NewFromConfig(&cfg, &console)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Debug("tee check", slog.String(FieldFile, "johnson.txt"))

	if !strings.Contains(console.String(), "DEBUG – tee check") {
		t.Errorf("console missing record: %q", console.String())
	}

	matches, err := filepath.Glob(filepath.Join(dir, RunLogPattern))
	if err != nil || len(matches) != 1 || matches[0] != logPath {
		t.Fatalf("expected one run log at %s, got %v (%v)", logPath, matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	if !strings.Contains(string(data), `"file":"johnson.txt"`) {
		t.Fatalf("run log missing record: %s", data)
	}
}

func TestPruneRunLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "mpd2html-20200101T000000.log")
	current := filepath.Join(dir, "mpd2html-20200102T000000.log")
	unrelated := filepath.Join(dir, "notes.log")
	for _, path := range []string{old, current, unrelated} {
		if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		stale := time.Now().AddDate(0, 0, -30)
		if err := os.Chtimes(path, stale, stale); err != nil {
			t.Fatal(err)
		}
	}

	if n := PruneRunLogs(NewNop(), dir, 0, ""); n != 0 {
		t.Fatalf("retention 0 removed %d files", n)
	}
	if n := PruneRunLogs(NewNop(), dir, 7, filepath.Base(current)); n != 1 {
		t.Fatalf("expected 1 removal, got %d", n)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("old log still present: %v", err)
	}
	for _, path := range []string{current, unrelated} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s should remain: %v", filepath.Base(path), err)
		}
	}
}
