// Package ledger records enrichment runs in a local SQLite database.
//
// Each fetch run gets a row in runs and one row per reference in lookups,
// capturing whether the reference resolved or why it was dropped. The ledger
// is an audit trail only; the report never reads it.
package ledger
