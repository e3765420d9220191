// Package importer turns a flat catalog export (one row per title, with
// genres, cast, directors, and countries packed as delimited strings) into
// the normalized relational schema of package catalog.
//
// One Run is one transaction: rows are parsed and normalized, lookup
// entities are resolved through run-scoped caches seeded from the store,
// titles are created (bound to at most the first listed country), and
// association rows are inserted idempotently. Rows with an empty title name
// or a non-integer release year are silently skipped; optional fields
// degrade to "no value". Unreadable input, missing required columns, or a
// concurrently held import lock abort before any row is processed. Any other
// failure mid-run rolls back the whole import.
package importer
