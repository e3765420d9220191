// Package report builds read-only views over the persisted catalog: table
// counts, top-N aggregates, and row samples. It issues only read queries and
// carries no import pipeline state.
package report
