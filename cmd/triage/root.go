// triage analyzes customer support ticket exports: intent classification,
// automation tier triage, topic discovery over the residual, and live-chat
// transcript extraction.
//
// Usage:
//
//	triage analyze tickets.csv            # full automation analysis
//	triage topics tickets.csv             # discover topics in 'Other'
//	triage extract -o transcripts.json    # export redacted transcripts
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"triage/internal/config"
	"triage/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Support ticket automation analysis",
	Long: "Triage classifies support tickets by true intent, assigns each one\n" +
		"an automation tier, and reports where AI can take over the queue.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(rootFlags.configPath)
		if err != nil {
			return err
		}
		if rootFlags.logLevel != "" {
			cfg.LogLevel = rootFlags.logLevel
		}
		if rootFlags.logFormat != "" {
			cfg.LogFormat = rootFlags.logFormat
		}
		logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to YAML config (default: triage.yaml if present)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
