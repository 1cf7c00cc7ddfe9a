package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewMultiHandlerCollapses(t *testing.T) {
	if _, ok := newMultiHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newMultiHandler(nil, inner, nil); h != inner {
		t.Fatal("expected the single non-nil handler to be returned unwrapped")
	}
}

func TestMultiHandlerRoutesByLevel(t *testing.T) {
	var console, runLog bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&runLog, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if h.Enabled(context.Background(), slog.LevelDebug-1) {
		t.Error("expected levels below every member to be disabled")
	}

	slog.New(h).Debug("page written", slog.String(FieldPage, "johnson-collection"))

	if console.Len() != 0 {
		t.Errorf("warn handler received debug record: %s", console.String())
	}
	if !strings.Contains(runLog.String(), `"page":"johnson-collection"`) {
		t.Errorf("debug handler missing record: %s", runLog.String())
	}
}

func TestMultiHandlerAttrsAndGroups(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil))

	slog.New(h.WithAttrs([]slog.Attr{slog.String(FieldRunID, "r1")}).WithGroup("item")).
		Info("skipped", slog.String("accession", "007.009.00007"))

	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		if !strings.Contains(buf.String(), `"run_id":"r1"`) {
			t.Errorf("%s: missing bound attr: %s", name, buf.String())
		}
		if !strings.Contains(buf.String(), `"item":{"accession":"007.009.00007"}`) {
			t.Errorf("%s: missing group: %s", name, buf.String())
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestMultiHandlerKeepsWritingAfterFailure(t *testing.T) {
	var console bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(failingWriter{}, nil),
		slog.NewJSONHandler(&console, nil),
	)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "converted", 0)
	err := h.Handle(context.Background(), record)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected joined write error, got %v", err)
	}
	if !strings.Contains(console.String(), "converted") {
		t.Fatalf("console missed the record: %q", console.String())
	}
}

func TestWithRunLog(t *testing.T) {
	var console, runLog bytes.Buffer
	logger := withRunLog(slog.New(slog.NewJSONHandler(&console, nil)), newJSONHandler(&runLog, slog.LevelInfo, false))
	logger.Info("converted")
	if console.Len() == 0 || !strings.Contains(runLog.String(), `"level":"info"`) {
		t.Fatalf("expected both outputs, got console=%q runLog=%q", console.String(), runLog.String())
	}

	var only bytes.Buffer
	withRunLog(nil, slog.NewJSONHandler(&only, nil)).Info("no console")
	if only.Len() == 0 {
		t.Fatal("expected output without a console logger")
	}
}
