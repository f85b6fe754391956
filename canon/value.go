// Package canon implements value normalization and canonical serialization
// for device signal documents.
//
// Canonical text is the single input to content hashing, so every rule here
// is mandatory for identity stability: object keys and (by default) array
// elements are sorted, numbers are rendered as fixed-precision decimal text,
// and strings are collapsed to one whitespace-normalized NFC form. Inputs
// that cannot be represented (functions, cycles, excess depth) resolve to
// fixed sentinels rather than errors.
package canon

import (
	"encoding/json"
	"strings"
)

// ValueKind discriminates the canonical value variant.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
	KindSentinel
)

// SentinelKind names a fixed placeholder substituted for values that cannot
// or should not be represented directly.
type SentinelKind string

const (
	SentinelMaxDepthExceeded    SentinelKind = "MaxDepthExceeded"
	SentinelUnsupportedFunction SentinelKind = "UnsupportedFunction"
	SentinelUnsupportedSymbol   SentinelKind = "UnsupportedSymbol"
	SentinelBigint              SentinelKind = "Bigint"
	SentinelBinaryEmpty         SentinelKind = "BinaryEmpty"
	SentinelNaN                 SentinelKind = "NaN"
	SentinelInfinity            SentinelKind = "Infinity"
	SentinelNegInfinity         SentinelKind = "NegInfinity"
)

// Value is the tagged canonical variant. Exactly the fields implied by Kind
// are meaningful; everything else is zero.
//
// Numbers carry their fixed-precision decimal rendering in Text, never a
// float, so two numerically-close inputs that round to the same decimal are
// indistinguishable from this point on. Sentinels carry their payload
// (symbol description, bigint digits) in Text as well.
type Value struct {
	Kind     ValueKind
	Text     string // KindString, KindNumber, sentinel payload
	Bool     bool
	List     []Value
	Map      []MapEntry // sorted ascending by Key when key sorting is enabled
	Sentinel SentinelKind
}

// MapEntry is one key/value pair of a canonical map.
type MapEntry struct {
	Key   string
	Value Value
}

// String constructs a canonical string value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number constructs a canonical number value from fixed-precision decimal text.
func Number(text string) Value { return Value{Kind: KindNumber, Text: text} }

// Bool constructs a canonical boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Null is the canonical null value.
func Null() Value { return Value{Kind: KindNull} }

func sentinel(kind SentinelKind, payload string) Value {
	return Value{Kind: KindSentinel, Sentinel: kind, Text: payload}
}

// SentinelText returns the literal string a sentinel renders as in canonical
// text. Sentinels render as plain strings (not object wrappers) so consumers
// comparing serialized output see stable literals.
func (v Value) SentinelText() string {
	switch v.Sentinel {
	case SentinelMaxDepthExceeded:
		return "[MaxDepthExceeded]"
	case SentinelUnsupportedFunction:
		return "[Function]"
	case SentinelUnsupportedSymbol:
		return "Symbol(" + v.Text + ")"
	case SentinelBigint:
		return v.Text
	case SentinelBinaryEmpty:
		return ""
	case SentinelNaN:
		return "NaN"
	case SentinelInfinity:
		return "Infinity"
	case SentinelNegInfinity:
		return "-Infinity"
	default:
		return ""
	}
}

// Render writes the canonical JSON text for v.
//
// Numbers and sentinels render as JSON strings: the canonical form of a
// number is its decimal text, and sentinel literals must survive as-is in
// output a consumer will string-compare.
func (v Value) Render() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindString, KindNumber:
		writeJSONString(sb, v.Text)
	case KindSentinel:
		writeJSONString(sb, v.SentinelText())
	case KindList:
		sb.WriteByte('[')
		for i, e := range v.List {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.render(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, e := range v.Map {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONString(sb, e.Key)
			sb.WriteByte(':')
			e.Value.render(sb)
		}
		sb.WriteByte('}')
	}
}

func writeJSONString(sb *strings.Builder, s string) {
	// encoding/json escaping is deterministic, which is all canonical text
	// requires of it.
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail.
		sb.WriteString(`""`)
		return
	}
	sb.Write(b)
}

// Undefined marks a deliberately-absent value. Go has no undefined kind, so
// callers that need JavaScript-style undefined semantics place this sentinel
// in their documents; IncludeUndefined=false drops map entries carrying it.
var Undefined = UndefinedValue{}

// UndefinedValue is the type of the Undefined marker.
type UndefinedValue struct{}

// Symbol is a caller-tagged opaque description. It canonicalizes to the
// literal "Symbol(<desc>)" like other unsupported kinds.
type Symbol string
