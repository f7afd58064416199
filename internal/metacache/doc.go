// Package metacache persists resolved film metadata as a flat CSV table.
//
// The cache is written once per fetch run and read by every report run. Each
// write replaces the whole file through a temp-file rename while holding an
// exclusive lock on a sibling ".lock" file, so a concurrent reader never sees
// a half-written table. List-valued fields are stored as JSON arrays inside a
// single cell; an empty cell means the value was absent.
package metacache
