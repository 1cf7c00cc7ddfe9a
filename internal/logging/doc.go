// Package logging assembles the slog loggers used by the mpd2html CLI.
//
// It owns the console and JSON handlers, level parsing, output routing and
// the optional per-run JSON log file under the configured log directory. The
// Reporter adapter bridges the catalog parser's warn/error sink onto a logger,
// dropping warnings unless verbose output was requested.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits lines with the same shape.
package logging
