package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable by every command. The TMDB
// credential is checked separately by RequireTMDB because only the fetch
// stage talks to the catalog.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// RequireTMDB reports an actionable error when no TMDB API key is configured.
func (c *Config) RequireTMDB() error {
	if c.TMDB.APIKey != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/boxdstats/config.toml"
	}
	return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'boxdstats config init')", defaultPath)
}

func (c *Config) validateTMDB() error {
	if c.TMDB.RequestDelayMillis < 0 {
		return errors.New("tmdb.request_delay_ms must be >= 0")
	}
	if c.TMDB.RequestTimeoutSeconds <= 0 {
		return errors.New("tmdb.request_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.TopN < 1 {
		return errors.New("report.top_n must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
