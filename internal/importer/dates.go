package importer

import (
	"strings"
	"time"
)

// dateLayouts are the accepted date_added formats, tried in order: full
// month name first ("September 24, 2021"), then the abbreviated form
// ("Sep 24, 2021").
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
}

// parseDateAdded interprets a free-text date. Unparseable or empty input is
// a normal outcome, reported through the second return value rather than an
// error.
func parseDateAdded(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
