package importer

import (
	"sort"
	"strconv"
	"time"

	"mediadex/internal/textutil"
)

// Columns the export must expose. Their absence is a structural error for the
// whole run; everything else about a row degrades per field.
var requiredColumns = []string{
	"title", "type", "release_year", "country", "listed_in",
	"cast", "director", "rating", "duration", "date_added",
}

// listSeparator splits multi-valued fields (country, listed_in, cast,
// director) regardless of the export's record delimiter.
const listSeparator = ","

// header maps column names to record positions.
type header map[string]int

// parseHeader validates the header record against requiredColumns.
func parseHeader(record []string) (header, error) {
	h := make(header, len(record))
	for i, name := range record {
		h[textutil.Normalize(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}
	return h, nil
}

// field returns the raw value of a named column, or "" when the record is
// shorter than the header (ragged rows degrade, they never fail).
func (h header) field(record []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// row is one validated export record. Duration and Rating are "" when
// absent; DateAdded is nil when the date is missing or unparseable.
type row struct {
	Name        string
	Type        string
	ReleaseYear int
	Duration    string
	Rating      string
	DateAdded   *time.Time
	Countries   []string
	Genres      []string
	Cast        []string
	Directors   []string
}

// parseRow converts a raw record into a row. The second return value is
// false when the record must be skipped: empty title name, or a release year
// that is not an integer.
func parseRow(h header, record []string) (row, bool) {
	name := textutil.Normalize(h.field(record, "title"))
	if name == "" {
		return row{}, false
	}

	year, err := strconv.Atoi(textutil.Normalize(h.field(record, "release_year")))
	if err != nil {
		return row{}, false
	}

	r := row{
		Name:        name,
		Type:        textutil.Normalize(h.field(record, "type")),
		ReleaseYear: year,
		Duration:    textutil.Normalize(h.field(record, "duration")),
		Rating:      textutil.Normalize(h.field(record, "rating")),
		Countries:   textutil.SplitList(h.field(record, "country"), listSeparator),
		Genres:      textutil.SplitList(h.field(record, "listed_in"), listSeparator),
		Cast:        textutil.SplitList(h.field(record, "cast"), listSeparator),
		Directors:   textutil.SplitList(h.field(record, "director"), listSeparator),
	}

	if added, ok := parseDateAdded(h.field(record, "date_added")); ok {
		r.DateAdded = &added
	}
	return r, true
}
