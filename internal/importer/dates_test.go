package importer

import (
	"testing"
	"time"
)

func TestParseDateAddedAcceptedFormats(t *testing.T) {
	want := time.Date(2021, time.September, 24, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"September 24, 2021", "Sep 24, 2021", "  September 24, 2021  "} {
		got, ok := parseDateAdded(in)
		if !ok {
			t.Fatalf("parseDateAdded(%q) reported no value", in)
		}
		if !got.Equal(want) {
			t.Fatalf("parseDateAdded(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateAddedRejectsUnknownInput(t *testing.T) {
	for _, in := range []string{"", "not a date", "2021-09-24", "24 September 2021"} {
		if _, ok := parseDateAdded(in); ok {
			t.Fatalf("parseDateAdded(%q) should report no value", in)
		}
	}
}
