// Package config assembles runtime settings for the triage CLI from
// defaults, an optional YAML file, and environment variables, in that
// order. A .env file in the working directory is honored before the
// environment is read so local setups can keep credentials out of the
// shell profile.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"triage/internal/helpdesk"
	"triage/internal/topics"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "triage.yaml"

// Config carries every runtime setting of the CLI.
type Config struct {
	Input     string `yaml:"input"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Report  ReportConfig  `yaml:"report"`
	Topics  TopicsConfig  `yaml:"topics"`
	Extract ExtractConfig `yaml:"extract"`
}

// ReportConfig controls analysis report rendering.
type ReportConfig struct {
	TopN   int    `yaml:"top_n"`
	Format string `yaml:"format"` // markdown or ascii
}

// TopicsConfig mirrors topics.Config for residual topic discovery.
type TopicsConfig struct {
	NumTopics      int     `yaml:"num_topics"`
	WordsPerTopic  int     `yaml:"words_per_topic"`
	MinDocFreq     int     `yaml:"min_doc_freq"`
	MaxDocFraction float64 `yaml:"max_doc_fraction"`
	Seed           int64   `yaml:"seed"`
	Iterations     int     `yaml:"iterations"`
}

// Model returns the equivalent topics.Config.
func (t TopicsConfig) Model() topics.Config {
	return topics.Config{
		NumTopics:      t.NumTopics,
		WordsPerTopic:  t.WordsPerTopic,
		MinDocFreq:     t.MinDocFreq,
		MaxDocFraction: t.MaxDocFraction,
		Seed:           t.Seed,
		Iterations:     t.Iterations,
	}
}

// ExtractConfig controls the transcript export. Credentials come from
// the environment only and are never read from the file.
type ExtractConfig struct {
	TokenURL  string   `yaml:"token_url"`
	BaseURL   string   `yaml:"base_url"`
	Output    string   `yaml:"output"`
	PageSize  int      `yaml:"page_size"`
	PageDelay Duration `yaml:"page_delay"`
	ChatDelay Duration `yaml:"chat_delay"`

	ClientID     string `yaml:"-"`
	ClientSecret string `yaml:"-"`
	RefreshToken string `yaml:"-"`
}

// Client returns the equivalent helpdesk.Config.
func (e ExtractConfig) Client() helpdesk.Config {
	return helpdesk.Config{
		TokenURL:     e.TokenURL,
		BaseURL:      e.BaseURL,
		ClientID:     e.ClientID,
		ClientSecret: e.ClientSecret,
		RefreshToken: e.RefreshToken,
		PageSize:     e.PageSize,
		PageDelay:    time.Duration(e.PageDelay),
		ChatDelay:    time.Duration(e.ChatDelay),
	}
}

// Duration wraps time.Duration so YAML files can say "500ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Report: ReportConfig{
			TopN:   10,
			Format: "markdown",
		},
		Topics: TopicsConfig{
			NumTopics:      10,
			WordsPerTopic:  15,
			MinDocFreq:     5,
			MaxDocFraction: 0.9,
			Seed:           42,
			Iterations:     200,
		},
		Extract: ExtractConfig{
			TokenURL:  helpdesk.DefaultTokenURL,
			BaseURL:   helpdesk.DefaultBaseURL,
			Output:    "salesiq_chat_transcripts.json",
			PageSize:  100,
			PageDelay: Duration(time.Second),
			ChatDelay: Duration(time.Second),
		},
	}
}

// Load builds the configuration. A path named explicitly, via the flag or
// TRIAGE_CONFIG, must exist; an empty path falls back to DefaultPath when
// present and to pure defaults otherwise.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("TRIAGE_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TRIAGE_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv("TRIAGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRIAGE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TRIAGE_OUTPUT"); v != "" {
		cfg.Extract.Output = v
	}
	if v := os.Getenv("TRIAGE_PAGE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Extract.PageDelay = Duration(d)
		}
	}
	if v := os.Getenv("TRIAGE_CHAT_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Extract.ChatDelay = Duration(d)
		}
	}

	cfg.Extract.ClientID = os.Getenv("ZOHO_CLIENT_ID")
	cfg.Extract.ClientSecret = os.Getenv("ZOHO_CLIENT_SECRET")
	cfg.Extract.RefreshToken = os.Getenv("ZOHO_REFRESH_TOKEN")
}
