// Package config provides configuration loading for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/spf13/viper"
)

// DefaultQuoteBaseURL is the Alpha Vantage query endpoint.
const DefaultQuoteBaseURL = "https://www.alphavantage.co/query"

// DefaultQuoteTimeout bounds each external quote call.
const DefaultQuoteTimeout = 10 * time.Second

// Config holds the explicit application configuration. Nothing reads the
// environment directly outside this package.
type Config struct {
	ExcelPath    string
	SettingsPath string
	APIKey       string
	QuoteBaseURL string
	QuoteTimeout time.Duration
}

// Load builds a Config from Viper and environment variables.
// Precedence per key:
//  1. Viper configuration (config file or LENS_ env vars)
//  2. Direct environment variables (EXCEL_FILE_PATH, USER_SETTINGS_PATH,
//     API_KEY, ALPHA_VANTAGE_URL)
//  3. Default values
func Load() (*Config, error) {
	cfg := &Config{
		QuoteBaseURL: DefaultQuoteBaseURL,
		QuoteTimeout: DefaultQuoteTimeout,
	}

	// Load from Viper first
	if v := viper.GetString("excel.path"); v != "" {
		cfg.ExcelPath = ExpandPath(v)
	}
	if v := viper.GetString("settings.path"); v != "" {
		cfg.SettingsPath = ExpandPath(v)
	}
	if v := viper.GetString("quotes.api_key"); v != "" {
		cfg.APIKey = v
	}
	if v := viper.GetString("quotes.base_url"); v != "" {
		cfg.QuoteBaseURL = v
	}
	if v := viper.GetDuration("quotes.timeout"); v > 0 {
		cfg.QuoteTimeout = v
	}

	// Override with direct environment variables if not set
	if cfg.ExcelPath == "" {
		cfg.ExcelPath = ExpandPath(os.Getenv("EXCEL_FILE_PATH"))
	}
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = ExpandPath(os.Getenv("USER_SETTINGS_PATH"))
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.QuoteBaseURL == DefaultQuoteBaseURL {
		if v := os.Getenv("ALPHA_VANTAGE_URL"); v != "" {
			cfg.QuoteBaseURL = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields every command depends on.
// API key and settings path are only required by the dashboard and are
// checked there, since the report commands never touch the network.
func (c *Config) Validate() error {
	if c.ExcelPath == "" {
		return fmt.Errorf("%w: excel.path (or EXCEL_FILE_PATH) is required", common.ErrMissingConfig)
	}
	if c.QuoteBaseURL == "" {
		return fmt.Errorf("%w: quotes.base_url must not be empty", common.ErrInvalidConfig)
	}
	if c.QuoteTimeout <= 0 {
		return fmt.Errorf("%w: quotes.timeout must be positive", common.ErrInvalidConfig)
	}
	return nil
}

// RequireDashboard checks the extra fields the dashboard command needs.
func (c *Config) RequireDashboard() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("%w: settings.path (or USER_SETTINGS_PATH) is required", common.ErrMissingConfig)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: quotes.api_key (or API_KEY) is required", common.ErrMissingConfig)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
