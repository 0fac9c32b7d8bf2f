package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"triage/internal/classify"
	"triage/internal/report"
	"triage/internal/ticket"
	"triage/internal/topics"
)

var topicsFlags struct {
	input  string
	topics int
	words  int
	seed   int64
}

var topicsCmd = &cobra.Command{
	Use:   "topics [tickets.csv]",
	Short: "Discover themes in tickets no rule can classify",
	Long: `Run topic discovery over the tickets a coarse first-pass rule set leaves
in 'Other'. Prints each topic's keyword cluster for a human to name;
named clusters become new classifier rules.

Usage:
  triage topics tickets.csv
  triage topics tickets.csv --topics=8 --seed=7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTopics,
}

func init() {
	f := topicsCmd.Flags()
	f.StringVarP(&topicsFlags.input, "input", "i", "", "Path to the ticket CSV export")
	f.IntVar(&topicsFlags.topics, "topics", 0, "Number of topics to fit (0 = config value)")
	f.IntVar(&topicsFlags.words, "words", 0, "Keywords to print per topic (0 = config value)")
	f.Int64Var(&topicsFlags.seed, "seed", 0, "Random seed for the topic model (0 = config value)")
}

func runTopics(cmd *cobra.Command, args []string) error {
	input := topicsFlags.input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		return fmt.Errorf("ticket CSV path is required\n\nUsage: triage topics tickets.csv")
	}

	tickets, err := ticket.Load(input)
	if err != nil {
		return err
	}

	var docs []string
	for _, t := range tickets {
		if classify.ClassifyReduced(t.Text) == ticket.IntentOther {
			docs = append(docs, t.Text)
		}
	}

	tcfg := cfg.Topics.Model()
	if topicsFlags.topics > 0 {
		tcfg.NumTopics = topicsFlags.topics
	}
	if topicsFlags.words > 0 {
		tcfg.WordsPerTopic = topicsFlags.words
	}
	if topicsFlags.seed != 0 {
		tcfg.Seed = topicsFlags.seed
	}

	res, err := topics.Discover(docs, tcfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.RenderTopics(res))
	return nil
}
