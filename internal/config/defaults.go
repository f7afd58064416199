package config

const (
	defaultExportArchive         = "letterboxd-export.zip"
	defaultExportDir             = "lb_export"
	defaultCacheFile             = "metadata_cache.csv"
	defaultReportFile            = "index.html"
	defaultStateDir              = "~/.local/share/boxdstats"
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultCertificationRegion   = "US"
	defaultRequestDelayMillis    = 250
	defaultRequestTimeoutSeconds = 10
	defaultReportTitle           = "Letterboxd Stats"
	defaultTopN                  = 10
	defaultChartLibraryURL       = "https://cdn.plot.ly/plotly-2.35.2.min.js"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Set3 qualitative palette.
var defaultPieColors = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ExportArchive: defaultExportArchive,
			ExportDir:     defaultExportDir,
			CacheFile:     defaultCacheFile,
			ReportFile:    defaultReportFile,
			StateDir:      defaultStateDir,
		},
		TMDB: TMDB{
			BaseURL:               defaultTMDBBaseURL,
			CertificationRegion:   defaultCertificationRegion,
			RequestDelayMillis:    defaultRequestDelayMillis,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		Report: Report{
			Title:           defaultReportTitle,
			TopN:            defaultTopN,
			ChartLibraryURL: defaultChartLibraryURL,
			Theme: Theme{
				Background:    "#f4f6f8",
				Card:          "#ffffff",
				Accent:        "#2c3e50",
				LineColor:     "#3498db",
				BarColorscale: "Teal",
				PieColors:     append([]string(nil), defaultPieColors...),
			},
		},
		Ledger: Ledger{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
