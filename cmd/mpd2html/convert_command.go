package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mpd2html/internal/catalog"
	"mpd2html/internal/config"
	"mpd2html/internal/logging"
	"mpd2html/internal/page"
	"mpd2html/internal/preflight"
)

// Usage errors are printed verbatim as full sentences, hence the capitals
// and trailing periods.
var (
	errNoOutputDir  = errors.New("Please specify an output directory with -o.")
	errNoInputFiles = errors.New("Please specify one or more input files.")
)

// errSkippedItems is returned under --strict when any item was dropped.
var errSkippedItems = errors.New("some items were skipped")

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir string
		verbose   bool
		strict    bool
		pages     []string
	)

	cmd := &cobra.Command{
		Use:   "convert -o OUTPUT_DIR [flags] FILE...",
		Short: "Parse export files and write the HTML listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(outputDir) == "" {
				outputDir = cfg.Paths.OutputDir
			}
			if outputDir == "" {
				return usageError(cmd, errNoOutputDir)
			}
			if len(args) == 0 {
				return usageError(cmd, errNoInputFiles)
			}
			if outputDir, err = config.ExpandPath(outputDir); err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}
			inputs, err := expandInputs(args)
			if err != nil {
				return err
			}
			if err := preflight.Err(preflight.RunAll(cfg, outputDir, inputs)); err != nil {
				return fmt.Errorf("preflight: %w", err)
			}

			selected, err := selectPages(cfg, pages)
			if err != nil {
				return err
			}

			logger, logPath, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
			logger = logging.WithContext(runCtx, logger)
			logging.PruneRunLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, filepath.Base(logPath))

			parser, err := ctx.parser(logging.NewReporter(logger, verbose || cfg.Logging.Verbose))
			if err != nil {
				return err
			}
			convertLogger := logging.NewComponentLogger(logger, "convert")
			convertLogger.Debug("conversion started",
				slog.Int("files", len(inputs)),
				slog.String("output", outputDir),
			)

			result, err := parser.ParseFiles(runCtx, inputs)
			if err != nil {
				return err
			}

			writer, err := page.NewWriter(outputDir, page.Options{
				Title:      cfg.Render.Title,
				Pages:      selected,
				WriteIndex: cfg.Render.WriteIndex,
				AssetsDir:  cfg.Paths.AssetsDir,
				Workers:    cfg.Render.Workers,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			if _, err := writer.WriteAll(runCtx, result.Records); err != nil {
				return err
			}

			convertLogger.Debug("conversion finished",
				slog.Int("total", result.Total),
				slog.Int("accepted", len(result.Records)),
				slog.Int("skipped", result.Skipped),
			)
			if strict && result.Skipped > 0 {
				return fmt.Errorf("%w: %d of %d", errSkippedItems, result.Skipped, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report items accepted with warnings")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any item is skipped")
	cmd.Flags().StringSliceVar(&pages, "pages", nil, "Pages to write: title, composers, lyricists, source_names (defaults to render.pages)")
	return cmd
}

// selectPages resolves the --pages flag, falling back to render.pages.
func selectPages(cfg *config.Config, flagPages []string) ([]page.Page, error) {
	var attrs []catalog.SortAttribute
	if len(flagPages) > 0 {
		for _, value := range flagPages {
			attr, err := catalog.ParseSortAttribute(value)
			if err != nil {
				return nil, fmt.Errorf("--pages: %w", err)
			}
			attrs = append(attrs, attr)
		}
	} else {
		var err error
		if attrs, err = cfg.SortAttributes(); err != nil {
			return nil, err
		}
	}
	return page.Select(attrs)
}

func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w\n%s", err, strings.TrimRight(cmd.UsageString(), "\n"))
}
