// Package logging assembles the slog loggers used by every boxdstats command.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// standard attribute keys (component, event_type, error_hint, impact, run_id)
// so fetch and report stages emit log lines with the same shape. Console
// output is coloured only when it goes to a terminal. A no-op logger is
// provided for tests and for wiring code that cannot fail.
package logging
