// Package config loads and validates the TOML configuration file controlling
// paths, import behavior, the reporting server, and logging.
package config
