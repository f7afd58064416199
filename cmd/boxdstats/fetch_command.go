package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"boxdstats/internal/config"
	"boxdstats/internal/enrich"
	"boxdstats/internal/export"
	"boxdstats/internal/ledger"
	"boxdstats/internal/logging"
	"boxdstats/internal/metacache"
	"boxdstats/internal/tmdb"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Resolve the export against TMDB and rebuild the metadata cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireTMDB(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			summary, err := runFetch(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("Fetch summary",
				[]column{{Header: "Item"}, {Header: "Value", MaxWidth: 60}},
				summary.rows(),
			))
			return nil
		},
	}
}

type fetchSummary struct {
	runID      string
	extracted  bool
	references int
	resolved   int
	cachePath  string
}

func (s fetchSummary) rows() [][]string {
	return [][]string{
		{"Run", s.runID},
		{"Archive extracted", yesNo(s.extracted)},
		{"References", strconv.Itoa(s.references)},
		{"Resolved", strconv.Itoa(s.resolved)},
		{"Dropped", strconv.Itoa(s.references - s.resolved)},
		{"Cache", s.cachePath},
	}
}

func runFetch(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fetchSummary, error) {
	summary := fetchSummary{runID: uuid.NewString(), cachePath: cfg.Paths.CacheFile}
	logger = logger.With(logging.String(logging.FieldRunID, summary.runID))

	extracted, err := export.Ensure(cfg.Paths.ExportArchive, cfg.Paths.ExportDir)
	if err != nil {
		return summary, err
	}
	summary.extracted = extracted
	sources, err := export.Load(cfg.Paths.ExportDir)
	if err != nil {
		return summary, err
	}
	refs := export.References(sources)
	summary.references = len(refs)
	logger.Info("export loaded",
		logging.String("export_dir", cfg.Paths.ExportDir),
		logging.Bool("extracted", extracted),
		logging.Int("watched", len(sources.Watched)),
		logging.Int("watchlist", len(sources.Watchlist)),
		logging.Int("liked", len(sources.Liked)),
		logging.Int("reference_count", len(refs)))

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return summary, err
	}

	recorder := openRunRecorder(ctx, cfg, logger, summary.runID, len(refs))
	defer recorder.close()

	enricher := enrich.New(client, enrich.Options{
		Delay:               cfg.RequestDelay(),
		CertificationRegion: cfg.TMDB.CertificationRegion,
		Logger:              logger,
		OnOutcome:           recorder.record,
	})
	result, err := enricher.Run(ctx, refs)
	if err != nil {
		recorder.finish(0, err)
		return summary, err
	}
	summary.resolved = len(result.Records)

	if err := metacache.New(cfg.Paths.CacheFile, logger).Write(result.Records); err != nil {
		err = fmt.Errorf("write metadata cache: %w", err)
		recorder.finish(summary.resolved, err)
		return summary, err
	}
	recorder.finish(summary.resolved, nil)
	return summary, nil
}

// runRecorder mirrors enrichment outcomes into the ledger. Ledger problems
// are logged and never fail the fetch.
type runRecorder struct {
	ctx    context.Context
	store  *ledger.Store
	runID  string
	logger *slog.Logger
}

func openRunRecorder(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string, references int) *runRecorder {
	r := &runRecorder{ctx: context.WithoutCancel(ctx), runID: runID, logger: logger}
	if !cfg.Ledger.Enabled {
		return r
	}
	store, err := ledger.Open(cfg.LedgerPath())
	if err != nil {
		r.warn("ledger unavailable", "ledger_open_failed", err)
		return r
	}
	if _, err := store.BeginRun(r.ctx, runID, references); err != nil {
		_ = store.Close()
		r.warn("ledger run not recorded", "ledger_begin_failed", err)
		return r
	}
	r.store = store
	return r
}

func (r *runRecorder) record(index int, outcome enrich.Outcome) {
	if r.store == nil {
		return
	}
	l := ledger.Lookup{
		RunID:    r.runID,
		Position: index,
		Title:    outcome.Reference.Title,
		Year:     outcome.Reference.Year,
		Status:   string(outcome.Status),
		TMDBID:   outcome.TMDBID,
	}
	if outcome.Err != nil {
		l.ErrorMessage = outcome.Err.Error()
	}
	if err := r.store.RecordLookup(r.ctx, l); err != nil {
		r.warn("ledger lookup not recorded", "ledger_record_failed", err)
	}
}

func (r *runRecorder) finish(resolved int, runErr error) {
	if r.store == nil {
		return
	}
	if err := r.store.FinishRun(r.ctx, r.runID, resolved, runErr); err != nil {
		r.warn("ledger run not finalized", "ledger_finish_failed", err)
	}
}

func (r *runRecorder) close() {
	if r.store == nil {
		return
	}
	_ = r.store.Close()
}

func (r *runRecorder) warn(msg, eventType string, err error) {
	logging.WarnWithContext(r.logger, msg, eventType,
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "delete the ledger file or set ledger.enabled = false"),
		logging.String(logging.FieldImpact, "fetch history for this run is incomplete"))
}
