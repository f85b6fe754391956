package canon

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultPrecision is the number of decimal digits numbers are rounded to
// and rendered with in canonical form.
const DefaultPrecision = 3

const (
	minPrecision = 0
	maxPrecision = 10
)

// NormalizeString canonicalizes a string: leading/trailing whitespace is
// trimmed, any interior run of whitespace (including tab/newline/CR)
// collapses to a single ASCII space, the result is composed to Unicode NFC,
// and zero-width characters are stripped.
func NormalizeString(s string) string {
	// Fields splits on any Unicode whitespace, so join-by-space performs
	// both the trim and the collapse.
	s = strings.Join(strings.Fields(s), " ")
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		return r
	}, s)
}

// NormalizeNumber renders n as decimal text with exactly precision digits
// after the point, rounding half-up (half away from zero for negatives).
// Precision is clamped to [0,10]. NaN and the infinities normalize to the
// literals "NaN", "Infinity" and "-Infinity".
//
// Rounding operates on the shortest decimal representation of n, not on a
// scaled float, so values that differ only by binary representation jitter
// below the precision collapse to the identical string.
func NormalizeNumber(n float64, precision int) string {
	if precision < minPrecision {
		precision = minPrecision
	}
	if precision > maxPrecision {
		precision = maxPrecision
	}
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return roundDecimalHalfUp(strconv.FormatFloat(n, 'f', -1, 64), precision)
}

// normalizeInt renders an integer with the fixed-precision tail without a
// float64 round trip, so values beyond 2^53 stay exact.
func normalizeInt(digits string, precision int) string {
	if precision < minPrecision {
		precision = minPrecision
	}
	if precision > maxPrecision {
		precision = maxPrecision
	}
	if precision == 0 {
		return digits
	}
	return digits + "." + strings.Repeat("0", precision)
}

// roundDecimalHalfUp rounds a plain decimal string ("-12.345") half-up to
// precision fractional digits and pads with trailing zeros.
func roundDecimalHalfUp(s string, precision int) string {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	if len(fracPart) <= precision {
		fracPart += strings.Repeat("0", precision-len(fracPart))
	} else {
		keep := fracPart[:precision]
		roundUp := fracPart[precision] >= '5'
		fracPart = keep
		if roundUp {
			intPart, fracPart = incrementDecimal(intPart, fracPart)
		}
	}

	out := intPart
	if precision > 0 {
		out += "." + fracPart
	}
	if neg && !(allZeroDigits(intPart) && allZeroDigits(fracPart)) {
		out = "-" + out
	}
	return out
}

// incrementDecimal adds one unit in the last place of intPart.fracPart,
// carrying across the decimal point.
func incrementDecimal(intPart, fracPart string) (string, string) {
	digits := []byte(intPart + fracPart)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}
	cut := len(digits) - len(fracPart)
	return string(digits[:cut]), string(digits[cut:])
}

func allZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// NormalizeValue canonicalizes an arbitrary value under the default
// configuration. Booleans and nil pass through; strings, numbers, arrays
// and objects follow the package normalization rules; unsupported kinds
// resolve to sentinels.
func NormalizeValue(v any) Value {
	w := newWalker(DefaultConfig())
	return w.walk("", v, 0)
}

// NormalizeArray canonicalizes v as an ordered list: each element is
// normalized recursively and the results are sorted by canonical string
// form. Non-array input normalizes to an empty list.
func NormalizeArray(v any) []Value {
	cv := NormalizeValue(v)
	if cv.Kind != KindList {
		return []Value{}
	}
	return cv.List
}

// NormalizeObject canonicalizes v as a map re-keyed by normalized key and
// sorted ascending. Non-object input normalizes to an empty map.
func NormalizeObject(v any) []MapEntry {
	cv := NormalizeValue(v)
	if cv.Kind != KindMap {
		return []MapEntry{}
	}
	return cv.Map
}
