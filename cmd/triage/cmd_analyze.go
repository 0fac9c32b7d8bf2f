package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"triage/internal/classify"
	"triage/internal/report"
	"triage/internal/tables"
	"triage/internal/ticket"
)

var analyzeFlags struct {
	input   string
	format  string
	topN    int
	workers int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [tickets.csv]",
	Short: "Classify tickets and report automation potential",
	Long: `Analyze a support ticket export: classify every ticket's true intent,
assign it an automation tier, and print the automation analysis.

Usage:
  triage analyze tickets.csv
  triage analyze --input=tickets.csv --format=ascii`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeFlags.input, "input", "i", "", "Path to the ticket CSV export")
	f.StringVar(&analyzeFlags.format, "format", "", "Table format: markdown or ascii")
	f.IntVar(&analyzeFlags.topN, "top", 0, "Rows in the volume tables (0 = config value)")
	f.IntVar(&analyzeFlags.workers, "workers", runtime.NumCPU(), "Concurrent classification workers")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := analyzeFlags.input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		return fmt.Errorf("ticket CSV path is required\n\nUsage: triage analyze tickets.csv")
	}

	tickets, err := ticket.Load(input)
	if err != nil {
		return err
	}
	if err := classify.Annotate(cmd.Context(), tickets, analyzeFlags.workers); err != nil {
		return err
	}

	format := analyzeFlags.format
	if format == "" {
		format = cfg.Report.Format
	}
	topN := analyzeFlags.topN
	if topN <= 0 {
		topN = cfg.Report.TopN
	}

	st := report.Compute(tickets)
	fmt.Fprint(cmd.OutOrStdout(), report.Render(st, report.Options{
		Mode: tables.ParseMode(format),
		TopN: topN,
	}))
	return nil
}
