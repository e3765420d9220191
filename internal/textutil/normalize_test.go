package textutil_test

import (
	"reflect"
	"testing"

	"mediadex/internal/textutil"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Drama", "Drama"},
		{"  Stranger Things  ", "Stranger Things"},
		{"Sam \t Lee", "Sam Lee"},
		{"line\nbreak\tand\r\nmore", "line break and more"},
		{"a  b   c", "a b c"},
	}
	for _, tc := range cases {
		if got := textutil.Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  a  b ", "already clean", "\t\n x \n"}
	for _, in := range inputs {
		once := textutil.Normalize(in)
		if twice := textutil.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestSplitListDropsEmptyTokens(t *testing.T) {
	if got := textutil.SplitList("", ","); got != nil {
		t.Fatalf("SplitList(\"\") = %v, want nil", got)
	}
	if got := textutil.SplitList(",  ,", ","); got != nil {
		t.Fatalf("SplitList(\",  ,\") = %v, want nil", got)
	}
}

func TestSplitListPreservesOrderAndDuplicates(t *testing.T) {
	got := textutil.SplitList("Drama, International,  Drama", ",")
	want := []string{"Drama", "International", "Drama"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
}

func TestSplitListNormalizesTokens(t *testing.T) {
	got := textutil.SplitList("  Sam   Lee ,United  States", ",")
	want := []string{"Sam Lee", "United States"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
}
