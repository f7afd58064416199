// Package tmdb provides the minimal TMDB API client used by the fetch stage.
//
// It authenticates requests with the api_key query parameter and exposes movie
// search with an optional release-year filter plus movie detail retrieval with
// credits, release dates, and keywords appended in the same response. Responses
// are strongly typed so the enricher can flatten them. Options allow tests to
// supply custom HTTP clients without modifying production code.
package tmdb
