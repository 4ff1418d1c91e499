package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the statement fetcher application.
type Config struct {
	// Base URL for the financial data provider (configurable for testing)
	ProviderBaseURL string `mapstructure:"provider_base_url"`

	// Directory run output folders are created under
	OutputDir string `mapstructure:"output_dir"`

	// Upper bound on the whole fetch phase, in seconds
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`

	// Also write the statements into a single XLSX workbook
	ExportWorkbook bool `mapstructure:"export_workbook"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables (all optional):
//   - PROVIDER_BASE_URL (defaults to the Yahoo Finance query host)
//   - OUTPUT_DIR (defaults to "outputs")
//   - FETCH_TIMEOUT_SECONDS (defaults to 30)
//   - EXPORT_WORKBOOK (defaults to false)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	// Set defaults
	v.SetDefault("provider_base_url", "https://query2.finance.yahoo.com")
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("fetch_timeout_seconds", 30)
	v.SetDefault("export_workbook", false)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.statementfetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("provider_base_url", "PROVIDER_BASE_URL")
	v.BindEnv("output_dir", "OUTPUT_DIR")
	v.BindEnv("fetch_timeout_seconds", "FETCH_TIMEOUT_SECONDS")
	v.BindEnv("export_workbook", "EXPORT_WORKBOOK")

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate
	if config.ProviderBaseURL == "" {
		return nil, fmt.Errorf("PROVIDER_BASE_URL must not be empty")
	}
	if config.OutputDir == "" {
		return nil, fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	if config.FetchTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive, got %d", config.FetchTimeoutSeconds)
	}

	return config, nil
}
