// Package export reads a Letterboxd data export.
//
// It extracts the export archive, loads the watched, watchlist, and liked
// tables (each needs at least Name and Year columns), and produces the
// deduplicated list of (title, year) references that the fetch stage resolves
// against TMDB. Missing inputs are fatal: callers receive errors wrapping
// ErrArchiveMissing or ErrMissingSource and no partial output is produced.
package export
