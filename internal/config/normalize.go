package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeReport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name     string
		value    *string
		fallback string
	}{
		{"paths.export_archive", &c.Paths.ExportArchive, defaultExportArchive},
		{"paths.export_dir", &c.Paths.ExportDir, defaultExportDir},
		{"paths.cache_file", &c.Paths.CacheFile, defaultCacheFile},
		{"paths.report_file", &c.Paths.ReportFile, defaultReportFile},
		{"paths.state_dir", &c.Paths.StateDir, defaultStateDir},
		{"paths.log_dir", &c.Paths.LogDir, ""},
	}
	for _, field := range fields {
		*field.value = strings.TrimSpace(*field.value)
		if *field.value == "" {
			*field.value = field.fallback
		}
		expanded, err := expandPath(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	c.TMDB.CertificationRegion = strings.ToUpper(strings.TrimSpace(c.TMDB.CertificationRegion))
	if c.TMDB.CertificationRegion == "" {
		c.TMDB.CertificationRegion = defaultCertificationRegion
	}
}

func (c *Config) normalizeReport() {
	c.Report.Title = strings.TrimSpace(c.Report.Title)
	if c.Report.Title == "" {
		c.Report.Title = defaultReportTitle
	}
	c.Report.ChartLibraryURL = strings.TrimSpace(c.Report.ChartLibraryURL)
	if c.Report.ChartLibraryURL == "" {
		c.Report.ChartLibraryURL = defaultChartLibraryURL
	}
	if len(c.Report.Theme.PieColors) == 0 {
		c.Report.Theme.PieColors = append([]string(nil), defaultPieColors...)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
