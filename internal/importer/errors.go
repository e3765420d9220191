package importer

import (
	"errors"
	"strings"
)

// ErrImportLocked indicates another import run holds the data directory lock.
var ErrImportLocked = errors.New("another import is already running")

// MissingColumnsError reports required columns absent from the export header.
// It is raised before any row is read.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "catalog export missing required columns: " + strings.Join(e.Columns, ", ")
}
