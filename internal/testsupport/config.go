package testsupport

import (
	"path/filepath"
	"testing"

	"mpd2html/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Log files are disabled unless WithLogDir is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "site")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLogDir enables per-run JSON logs under the test's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithVerbose toggles warning output.
func WithVerbose(verbose bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Verbose = verbose
	}
}

// WithPages restricts the rendered listing pages.
func WithPages(pages ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.Pages = append([]string(nil), pages...)
	}
}

// WithSeverity overrides the severity of one anomaly kind.
func WithSeverity(kind, severity string) ConfigOption {
	return func(b *configBuilder) {
		if b.cfg.Validation.Severity == nil {
			b.cfg.Validation.Severity = map[string]string{}
		}
		b.cfg.Validation.Severity[kind] = severity
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
