package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"boxdstats/internal/config"
	"boxdstats/internal/export"
	"boxdstats/internal/logging"
	"boxdstats/internal/metacache"
	"boxdstats/internal/report"
	"boxdstats/internal/stats"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the statistics report from the metadata cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			path := cfg.Paths.ReportFile
			if !force && report.Exists(path) {
				logger.Info("using existing report", logging.String("path", path))
				fmt.Fprintf(out, "Using existing report: %s (pass --force to rebuild)\n", path)
				return nil
			}

			if err := buildReport(cfg, logger); err != nil {
				return err
			}
			fmt.Fprintf(out, "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rebuild the report even if it already exists")
	return cmd
}

func buildReport(cfg *config.Config, logger *slog.Logger) error {
	records, err := metacache.New(cfg.Paths.CacheFile, logger).Read()
	if err != nil {
		return err
	}
	sources, err := export.Load(cfg.Paths.ExportDir)
	if err != nil {
		return err
	}

	statistics := stats.Compute(stats.Input{
		Records:   records,
		Watched:   sources.WatchedSet(),
		Watchlist: sources.WatchlistSet(),
		Liked:     sources.LikedSet(),
		TopN:      cfg.Report.TopN,
	})
	if !statistics.Runtime.Available {
		logging.WarnWithContext(logger, "no runtimes in cache", "runtime_unavailable",
			logging.String(logging.FieldErrorHint, "re-run `boxdstats fetch` if TMDB was returning partial data"),
			logging.String(logging.FieldImpact, "runtime tiles and fun facts show unavailable"))
	}

	doc, err := report.Build(statistics, report.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	if err := report.Write(cfg.Paths.ReportFile, doc); err != nil {
		return err
	}
	logger.Info("report written",
		logging.String("path", cfg.Paths.ReportFile),
		logging.Int("film_count", len(records)),
		logging.Int("chart_count", len(doc.Charts)))
	return nil
}
