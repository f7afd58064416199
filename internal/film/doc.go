// Package film defines the value types shared by the fetch and report
// stages: the (title, year) reference read from the export, the flat metadata
// record resolved from TMDB, and title sets used for membership tests.
package film
