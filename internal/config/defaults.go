package config

import "mpd2html/internal/catalog"

const (
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 30
	defaultPageTitle     = "Johnson Sheet Music Collection"
	defaultWorkers       = 4
)

// Default returns a Config populated with defaults. Every listing page is
// enabled and no files are written outside the output directory.
func Default() Config {
	pages := make([]string, 0, len(catalog.SortAttributes()))
	for _, attr := range catalog.SortAttributes() {
		pages = append(pages, string(attr))
	}
	return Config{
		Input: Input{Encoding: catalog.DefaultEncoding},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
		Render: Render{
			Pages:      pages,
			WriteIndex: true,
			Title:      defaultPageTitle,
			Workers:    defaultWorkers,
		},
	}
}
