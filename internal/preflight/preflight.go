package preflight

import (
	"errors"
	"fmt"

	"mpd2html/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to a conversion into outputDir
// from inputs. An empty outputDir falls back to paths.output_dir.
func RunAll(cfg *config.Config, outputDir string, inputs []string) []Result {
	if cfg == nil {
		return nil
	}
	if outputDir == "" {
		outputDir = cfg.Paths.OutputDir
	}

	var results []Result
	if outputDir != "" {
		results = append(results, CheckCreatableDirectory("Output directory", outputDir))
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckCreatableDirectory("Log directory", cfg.Paths.LogDir))
	}
	if cfg.Paths.AssetsDir != "" {
		results = append(results, CheckDirectoryAccess("Assets directory", cfg.Paths.AssetsDir))
	}
	for _, input := range inputs {
		results = append(results, CheckInputFile(input))
	}
	return results
}

// Err joins the failed results into one error, or returns nil.
func Err(results []Result) error {
	var errs []error
	for _, r := range results {
		if !r.Passed {
			errs = append(errs, fmt.Errorf("%s: %s", r.Name, r.Detail))
		}
	}
	return errors.Join(errs...)
}
