// Package catalog persists the normalized media catalog in SQLite and
// exposes the operations the import pipeline and reporting layer need.
//
// The schema holds four lookup tables (country, genre, actor, director), the
// central title table, and three unique-pair association tables linking
// titles to genres, actors, and directors. Lookup and association kinds are
// parametrized (EntityKind, AssociationKind) so all four lookup tables and
// all three link tables share one resolve/create code path.
//
// All import writes run through Tx inside Store.WithTx, giving each import
// run a single all-or-nothing transaction. Read-side report queries run on
// the plain connection.
//
// The embedded schema.sql is applied on first open and guarded by a
// schema_version table; version changes require deleting the database and
// re-importing.
package catalog
