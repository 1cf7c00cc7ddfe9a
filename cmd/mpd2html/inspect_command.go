package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mpd2html/internal/catalog"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var problemsOnly bool

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Show how each item in the export files was classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(cmd, errNoInputFiles)
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

			out := cmd.OutOrStdout()
			rows := inspectRows(result.Items, problemsOnly)
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Accession", "Title", "Status", "Anomalies"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
			}

			summary, failed := result.Summary()
			kind := statusOK
			switch {
			case failed:
				kind = statusError
			case countStatus(result.Items, catalog.StatusAcceptedWithWarnings) > 0:
				kind = statusWarn
			}
			fmt.Fprintln(out, renderStatusLine("Summary", kind, summary, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&problemsOnly, "problems", false, "Only list items with warnings or fatal anomalies")
	return cmd
}

func inspectRows(items []catalog.Item, problemsOnly bool) [][]string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		status := item.Status()
		if problemsOnly && status == catalog.StatusAccepted {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			item.Record.AccessionNumber,
			truncate(item.Record.Title, 40),
			string(status),
			strings.Join(item.Messages(), "; "),
		})
	}
	return rows
}

func countStatus(items []catalog.Item, status catalog.Status) int {
	n := 0
	for _, item := range items {
		if item.Status() == status {
			n++
		}
	}
	return n
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
