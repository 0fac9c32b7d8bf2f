package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"triage/internal/helpdesk"
)

var extractFlags struct {
	output     string
	maxRetries int
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export redacted live-chat transcripts",
	Long: `Export every live-chat conversation from the helpdesk, scrub email
addresses and phone numbers, and write one JSON array file.

Credentials are read from ZOHO_CLIENT_ID, ZOHO_CLIENT_SECRET and
ZOHO_REFRESH_TOKEN; a .env file in the working directory is honored.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractFlags.output, "output", "o", "", "Output JSON path (default from config)")
	f.IntVar(&extractFlags.maxRetries, "max-retries", 0, "Give up after this many rate-limit retries per request (0 = retry forever)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	client := helpdesk.NewClient(cfg.Extract.Client())
	if extractFlags.maxRetries > 0 {
		client.Retry = helpdesk.CappedRetries{Delay: helpdesk.DefaultRetryDelay, Max: extractFlags.maxRetries}
	}

	res, err := helpdesk.NewExtractor(client).Run(cmd.Context())
	if err != nil {
		return err
	}

	output := extractFlags.output
	if output == "" {
		output = cfg.Extract.Output
	}
	if err := helpdesk.WriteTranscripts(output, res.Transcripts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d transcripts to %s (%d chats skipped)\n", res.Fetched, output, res.Skipped)
	return nil
}
