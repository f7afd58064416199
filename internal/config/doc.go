// Package config loads, normalizes, and validates boxdstats configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TMDB_API_KEY environment
// fallback. The Config type carries every knob the fetch and report stages
// need, so each stage receives its settings explicitly instead of reading
// package-level constants.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
