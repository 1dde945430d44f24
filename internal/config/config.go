package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the training shuffle seed used when none is configured.
const DefaultSeed int64 = 1

// Config holds the command line tool's configuration.
type Config struct {
	Language        string  `yaml:"language"`
	Seed            *int64  `yaml:"seed"` // nil selects DefaultSeed; 0 is a valid seed
	ValidationSplit float64 `yaml:"validation_split"`
	Lemmatizer      string  `yaml:"lemmatizer"`
	LexiconPath     string  `yaml:"lexicon_path"`
	PositiveCorpus  string  `yaml:"positive_corpus"`
	NegativeCorpus  string  `yaml:"negative_corpus"`
	LogLevel        string  `yaml:"log_level"`
	LogFormat       string  `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies defaults. An empty
// path skips the file and yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyDefaults(cfg)
	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the config file path from the environment, or ""
// when none is set.
func GetConfigPath() string {
	return os.Getenv("TWEETNLP_CONFIG")
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// HasCorpus reports whether external corpus files replace the bundled one.
func (c *Config) HasCorpus() bool {
	return c.PositiveCorpus != "" && c.NegativeCorpus != ""
}

func applyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = "english"
	}
	if cfg.Seed == nil {
		seed := DefaultSeed
		cfg.Seed = &seed
	}
	if cfg.Lemmatizer == "" {
		cfg.Lemmatizer = "morphy"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

func applyEnvironmentOverrides(cfg *Config) error {
	if v := os.Getenv("TWEETNLP_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("TWEETNLP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TWEETNLP_SEED: %w", err)
		}
		cfg.Seed = &seed
	}
	if v := os.Getenv("TWEETNLP_LEMMATIZER"); v != "" {
		cfg.Lemmatizer = v
	}
	if v := os.Getenv("TWEETNLP_POSITIVE_CORPUS"); v != "" {
		cfg.PositiveCorpus = v
	}
	if v := os.Getenv("TWEETNLP_NEGATIVE_CORPUS"); v != "" {
		cfg.NegativeCorpus = v
	}
	if v := os.Getenv("TWEETNLP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func validate(cfg *Config) error {
	cfg.Lemmatizer = strings.ToLower(cfg.Lemmatizer)
	switch cfg.Lemmatizer {
	case "morphy", "snowball":
	default:
		return fmt.Errorf("lemmatizer must be morphy or snowball, got %q", cfg.Lemmatizer)
	}
	if cfg.LexiconPath != "" && cfg.Lemmatizer != "morphy" {
		return fmt.Errorf("lexicon_path requires the morphy lemmatizer")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.ValidationSplit < 0 || cfg.ValidationSplit >= 1 {
		return fmt.Errorf("validation_split must be in [0, 1), got %v", cfg.ValidationSplit)
	}
	if (cfg.PositiveCorpus == "") != (cfg.NegativeCorpus == "") {
		return fmt.Errorf("positive_corpus and negative_corpus must be set together")
	}
	return nil
}
