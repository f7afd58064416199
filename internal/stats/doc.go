// Package stats derives the report statistics from cached film metadata and
// the user's watched, watchlist and liked title sets.
//
// Everything here is a pure function of its inputs. Rankings break ties by
// first-seen order so identical inputs always produce identical output.
package stats
