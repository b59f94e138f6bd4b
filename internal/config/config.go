package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/rentbook/internal/amount"
)

// FileName is the config file created by `rentbook init`.
const FileName = "rentbook.yaml"

// Config represents the top-level rentbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Log      LogConfig      `yaml:"log"`
	Import   ImportConfig   `yaml:"import"`
	Manual   ManualConfig   `yaml:"manual"`
	Insight  InsightConfig  `yaml:"insight"`
	Server   ServerConfig   `yaml:"server"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// ImportConfig holds defaults for the tabular import reader.
type ImportConfig struct {
	ContraAccount string `yaml:"contra_account"`
	// SingleDot is "grouping" or "decimal"; see amount.DotPolicy.
	SingleDot string `yaml:"single_dot"`
	Inbox     string `yaml:"inbox"`
}

// ManualConfig holds defaults for hand-entered transactions.
type ManualConfig struct {
	ContraAccount string `yaml:"contra_account"`
}

// InsightConfig controls the optional Gemini advisor.
type InsightConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// ServerConfig controls `rentbook serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a rentbook.yaml file from disk. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.DotPolicy(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Import: ImportConfig{
			ContraAccount: "Bank",
			SingleDot:     amount.DotGrouping.String(),
			Inbox:         "import",
		},
		Manual: ManualConfig{
			ContraAccount: "Cash",
		},
		Insight: InsightConfig{
			Enabled:   false,
			Model:     "gemini-2.5-flash",
			APIKeyEnv: "GEMINI_API_KEY",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DotPolicy returns the configured single-dot interpretation.
func (c *Config) DotPolicy() (amount.DotPolicy, error) {
	return amount.ParseDotPolicy(c.Import.SingleDot)
}

// LoadEnv loads variables from the given .env files into the process
// environment without overriding ones already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// APIKey returns the insight API key from the configured environment variable.
func (c *Config) APIKey() string {
	return strings.TrimSpace(os.Getenv(c.Insight.APIKeyEnv))
}

// InsightReady reports whether the advisor is enabled and has a key.
func (c *Config) InsightReady() bool {
	return c.Insight.Enabled && c.APIKey() != ""
}
