package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mpd2html/internal/catalog"
)

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var (
		format string
		sortBy string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "dump [--format json|yaml] FILE...",
		Short: "Print the accepted catalog records",
		Long: "Print the records parsed from the export files. With --all every item is\n" +
			"printed together with its raw lines and anomalies, including skipped ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(cmd, errNoInputFiles)
			}
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "yaml" {
				return fmt.Errorf("--format must be json or yaml, got %q", format)
			}
			inputs, err := expandInputs(args)
			if err != nil {
				return err
			}
			parser, err := ctx.parser(nil)
			if err != nil {
				return err
			}
			result, err := parser.ParseFiles(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			records := result.Records
			if records == nil {
				records = []catalog.Record{}
			}
			var payload any = records
			switch {
			case all:
				payload = result.Items
			case sortBy != "":
				attr, err := catalog.ParseSortAttribute(sortBy)
				if err != nil {
					return fmt.Errorf("--sort: %w", err)
				}
				payload = catalog.Sort(records, attr)
			}

			if format == "yaml" {
				return writeYAML(cmd, payload)
			}
			return writeJSON(cmd, payload)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort records by title, composers, lyricists or source_names")
	cmd.Flags().BoolVar(&all, "all", false, "Print every item with its lines and anomalies")
	return cmd
}
