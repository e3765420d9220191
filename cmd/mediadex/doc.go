// Command mediadex imports a flat media catalog export into a normalized
// SQLite database and serves read-only reports over it.
package main
