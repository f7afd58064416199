// Package enrich resolves export references against TMDB.
//
// For every reference the Enricher searches by title and year, takes the first
// hit, fetches its detail record with credits, release dates, and keywords, and
// flattens the payload into a film.Metadata. Lookups run one at a time with a
// fixed pause between them. A failed search, an empty result set, or a failed
// detail call drops that film and the run continues; only context
// cancellation aborts a run. Every reference yields an Outcome so callers can
// audit what was dropped and why.
package enrich
