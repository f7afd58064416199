// Command boxdstats turns a Letterboxd export into an HTML statistics page.
//
// `boxdstats fetch` extracts the export, resolves every film against TMDB and
// writes the metadata cache. `boxdstats report` reads the cache and the export
// tables and renders the report, reusing an existing report unless --force is
// given. The cache, history and config subcommands inspect local state.
package main
