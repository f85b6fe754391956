package canon

import (
	"math"
	"testing"
)

func TestNormalizeString_CollapsesWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"hello\tworld", "hello world"},
		{"hello\r\nworld", "hello world"},
		{"one  two\tthree\nfour", "one two three four"},
		{"", ""},
		{"   ", ""},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := NormalizeString(tc.in); got != tc.want {
			t.Fatalf("NormalizeString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeString_StripsZeroWidth(t *testing.T) {
	in := "he\u200bllo\u200c wo\u200drld\ufeff"
	if got := NormalizeString(in); got != "hello world" {
		t.Fatalf("zero-width characters survived: %q", got)
	}
}

func TestNormalizeString_NFC(t *testing.T) {
	// "e" + combining acute composes to U+00E9.
	if got := NormalizeString("café"); got != "café" {
		t.Fatalf("NFC composition failed: %q", got)
	}
}

func TestNormalizeNumber_HalfUpRounding(t *testing.T) {
	cases := []struct {
		in        float64
		precision int
		want      string
	}{
		{1.2345, 3, "1.235"},
		{1.2344, 3, "1.234"},
		{1.2345000001, 3, "1.235"},
		{0.0, 3, "0.000"},
		{-1.2345, 3, "-1.235"},
		{-1.2344, 3, "-1.234"},
		{2.5, 0, "3"},
		{99.9999, 3, "100.000"},
		{-0.0001, 3, "0.000"}, // rounds to zero, sign dropped
		{7.0, 3, "7.000"},
	}
	for _, tc := range cases {
		if got := NormalizeNumber(tc.in, tc.precision); got != tc.want {
			t.Fatalf("NormalizeNumber(%v, %d) = %q, want %q", tc.in, tc.precision, got, tc.want)
		}
	}
}

func TestNormalizeNumber_JitterCollapses(t *testing.T) {
	if NormalizeNumber(1.2345, 3) != NormalizeNumber(1.2345000001, 3) {
		t.Fatalf("sub-precision jitter changed the normalized form")
	}
}

func TestNormalizeNumber_Specials(t *testing.T) {
	if got := NormalizeNumber(math.NaN(), 3); got != "NaN" {
		t.Fatalf("NaN = %q", got)
	}
	if got := NormalizeNumber(math.Inf(1), 3); got != "Infinity" {
		t.Fatalf("+Inf = %q", got)
	}
	if got := NormalizeNumber(math.Inf(-1), 3); got != "-Infinity" {
		t.Fatalf("-Inf = %q", got)
	}
}

func TestNormalizeNumber_PrecisionClamped(t *testing.T) {
	if got := NormalizeNumber(1.5, -4); got != "2" {
		t.Fatalf("negative precision should clamp to 0, got %q", got)
	}
	if got := NormalizeNumber(1.5, 99); got != "1.5000000000" {
		t.Fatalf("excess precision should clamp to 10, got %q", got)
	}
}

func TestNormalizeArray_SortsByCanonicalForm(t *testing.T) {
	got := NormalizeArray([]any{"b", "a", "c"})
	if len(got) != 3 {
		t.Fatalf("want 3 elements, got %d", len(got))
	}
	if got[0].Text != "a" || got[1].Text != "b" || got[2].Text != "c" {
		t.Fatalf("elements not sorted: %v %v %v", got[0].Text, got[1].Text, got[2].Text)
	}
}

func TestNormalizeArray_NonArrayInput(t *testing.T) {
	if got := NormalizeArray("not an array"); len(got) != 0 {
		t.Fatalf("non-array input must normalize to an empty list, got %d elements", len(got))
	}
}

func TestNormalizeObject_SortsAndNormalizesKeys(t *testing.T) {
	got := NormalizeObject(map[string]any{"  b  ": 1, "a": 2})
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].Key != "a" || got[1].Key != "b" {
		t.Fatalf("keys not normalized+sorted: %q, %q", got[0].Key, got[1].Key)
	}
}

func TestNormalizeObject_NonObjectInput(t *testing.T) {
	if got := NormalizeObject(42); len(got) != 0 {
		t.Fatalf("non-object input must normalize to an empty map, got %d entries", len(got))
	}
}

func TestNormalizeValue_Passthrough(t *testing.T) {
	if v := NormalizeValue(true); v.Kind != KindBool || !v.Bool {
		t.Fatalf("bool did not pass through: %#v", v)
	}
	if v := NormalizeValue(nil); v.Kind != KindNull {
		t.Fatalf("nil did not pass through: %#v", v)
	}
}
