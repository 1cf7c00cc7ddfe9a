package logging

import "log/slog"

// Reporter forwards parser outcomes to a logger. Warnings are only emitted
// when verbose is set; errors are always emitted.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter wraps logger for use as a catalog reporter.
func NewReporter(logger *slog.Logger, verbose bool) *Reporter {
	logger = NewComponentLogger(logger, "parser")
	if !verbose {
		logger = WithLevelOverride(logger, slog.LevelError)
	}
	return &Reporter{logger: logger}
}

// Warn logs message at warning level.
func (r *Reporter) Warn(message string) {
	r.logger.Warn(message)
}

// Error logs message at error level.
func (r *Reporter) Error(message string) {
	r.logger.Error(message)
}
