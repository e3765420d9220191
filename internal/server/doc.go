// Package server serves the read-side reporting view over HTTP: an HTML
// page with table samples and aggregates, and a JSON summary endpoint.
package server
