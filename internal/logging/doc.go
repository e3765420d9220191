// Package logging builds slog loggers for the CLI and pipeline: a single-line
// console handler for interactive use, a JSON handler for machine
// consumption, and helpers for component-tagged loggers.
package logging
