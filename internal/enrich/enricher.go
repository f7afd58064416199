package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"boxdstats/internal/film"
	"boxdstats/internal/logging"
	"boxdstats/internal/tmdb"
)

// Status classifies the outcome of one reference lookup.
type Status string

const (
	StatusResolved     Status = "resolved"
	StatusNotFound     Status = "not_found"
	StatusSearchFailed Status = "search_failed"
	StatusDetailFailed Status = "detail_failed"
)

// Outcome records what happened to one reference.
type Outcome struct {
	Reference film.Reference
	Status    Status
	TMDBID    int64
	Err       error
}

// Result collects the records and per-reference outcomes of a run.
type Result struct {
	Records  []film.Metadata
	Outcomes []Outcome
}

// Dropped counts references that produced no record.
func (r *Result) Dropped() int {
	if r == nil {
		return 0
	}
	return len(r.Outcomes) - len(r.Records)
}

// Options configures an Enricher.
type Options struct {
	// Delay is the fixed pause between consecutive lookups.
	Delay time.Duration
	// CertificationRegion selects the market whose rating is kept. Default US.
	CertificationRegion string
	Logger              *slog.Logger
	// OnOutcome, when set, is called after every lookup with its position.
	OnOutcome func(index int, outcome Outcome)
}

// Enricher resolves references one at a time against a catalog.
type Enricher struct {
	catalog   tmdb.Searcher
	delay     time.Duration
	region    string
	logger    *slog.Logger
	onOutcome func(int, Outcome)
	sleep     func(context.Context, time.Duration) error
}

// New builds an Enricher backed by catalog.
func New(catalog tmdb.Searcher, opts Options) *Enricher {
	region := opts.CertificationRegion
	if region == "" {
		region = "US"
	}
	return &Enricher{
		catalog:   catalog,
		delay:     opts.Delay,
		region:    region,
		logger:    logging.NewComponentLogger(opts.Logger, "enrich"),
		onOutcome: opts.OnOutcome,
		sleep:     SleepWithContext,
	}
}

// Run looks up every reference in order. The returned error is non-nil only
// when ctx is cancelled; individual lookup failures become dropped outcomes.
func (e *Enricher) Run(ctx context.Context, refs []film.Reference) (*Result, error) {
	result := &Result{
		Records:  make([]film.Metadata, 0, len(refs)),
		Outcomes: make([]Outcome, 0, len(refs)),
	}
	sampler := logging.NewProgressSampler(10)
	started := time.Now()

	e.logger.Info("enrichment started",
		logging.Int("reference_count", len(refs)),
		logging.Duration("request_delay", e.delay))

	for i, ref := range refs {
		if i > 0 {
			if err := e.sleep(ctx, e.delay); err != nil {
				return nil, fmt.Errorf("enrichment interrupted: %w", err)
			}
		}

		meta, outcome := e.Lookup(ctx, ref)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("enrichment interrupted: %w", err)
		}
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Status == StatusResolved {
			result.Records = append(result.Records, meta)
		}
		if e.onOutcome != nil {
			e.onOutcome(i, outcome)
		}

		done := i + 1
		if percent := float64(done) / float64(len(refs)) * 100; sampler.ShouldLog(percent) {
			e.logger.Info("enrichment progress",
				logging.Int("processed", done),
				logging.Int("reference_count", len(refs)),
				logging.Int("resolved", len(result.Records)))
		}
	}

	e.logger.Info("enrichment finished",
		logging.Int("reference_count", len(refs)),
		logging.Int("resolved", len(result.Records)),
		logging.Int("dropped", result.Dropped()),
		logging.Duration("elapsed", time.Since(started).Round(time.Millisecond)))
	return result, nil
}

// Lookup resolves a single reference. The metadata is only meaningful when
// the outcome status is StatusResolved.
func (e *Enricher) Lookup(ctx context.Context, ref film.Reference) (film.Metadata, Outcome) {
	outcome := Outcome{Reference: ref}

	search, err := e.catalog.SearchMovie(ctx, ref.Title, ref.Year)
	if err != nil {
		outcome.Status = StatusSearchFailed
		outcome.Err = err
		e.logSkip(outcome)
		return film.Metadata{}, outcome
	}
	if search == nil || len(search.Results) == 0 {
		outcome.Status = StatusNotFound
		outcome.Err = errors.New("no search results")
		e.logSkip(outcome)
		return film.Metadata{}, outcome
	}

	outcome.TMDBID = search.Results[0].ID
	details, err := e.catalog.GetMovieDetails(ctx, outcome.TMDBID)
	if err != nil {
		outcome.Status = StatusDetailFailed
		outcome.Err = err
		e.logSkip(outcome)
		return film.Metadata{}, outcome
	}
	if details.ID == 0 {
		details.ID = outcome.TMDBID
	}

	meta := Normalize(details, e.region)
	outcome.Status = StatusResolved
	e.logger.Debug("lookup resolved",
		logging.String("reference", ref.String()),
		logging.Int64("tmdb_id", meta.TMDBID),
		logging.String("title", meta.Title),
		logging.Strings("genres", meta.Genres))
	return meta, outcome
}

func (e *Enricher) logSkip(outcome Outcome) {
	attrs := []logging.Attr{
		logging.String("reference", outcome.Reference.String()),
		logging.String("status", string(outcome.Status)),
		logging.String(logging.FieldEventType, "lookup_skipped"),
	}
	if outcome.TMDBID != 0 {
		attrs = append(attrs, logging.Int64("tmdb_id", outcome.TMDBID))
	}
	if outcome.Err != nil {
		attrs = append(attrs, logging.Error(outcome.Err))
	}
	e.logger.Debug("lookup skipped", logging.Args(attrs...)...)
}
