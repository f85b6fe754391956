package canon

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// legacyMaxDepth is a hard recursion cutoff for the legacy path, which has
// no cycle tracking. Branches beyond it render as null.
const legacyMaxDepth = 50

// SerializeLegacy is the pre-stats serialization mode, kept purely for
// comparison and benchmarking: same key/number normalization and key
// sorting, but no array sorting, no cycle/depth sentinel elaboration, and
// no statistics.
func SerializeLegacy(v any) string {
	var sb strings.Builder
	legacyRender(&sb, v, 0)
	return sb.String()
}

func legacyRender(sb *strings.Builder, v any, depth int) {
	if depth > legacyMaxDepth {
		sb.WriteString("null")
		return
	}
	switch t := v.(type) {
	case nil, UndefinedValue:
		sb.WriteString("null")
	case string:
		writeJSONString(sb, NormalizeString(t))
	case bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case float64:
		legacyNumber(sb, t)
	case float32:
		legacyNumber(sb, float64(t))
	case int:
		writeJSONString(sb, normalizeInt(strconv.Itoa(t), DefaultPrecision))
	case int64:
		writeJSONString(sb, normalizeInt(strconv.FormatInt(t, 10), DefaultPrecision))
	case []byte:
		writeJSONString(sb, "")
	case *big.Int:
		if t == nil {
			sb.WriteString("null")
			return
		}
		writeJSONString(sb, t.String())
	case Symbol:
		writeJSONString(sb, "Symbol("+string(t)+")")
	case []any:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			legacyRender(sb, e, depth+1)
		}
		sb.WriteByte(']')
	case map[string]any:
		rawKeys := make([]string, 0, len(t))
		for k := range t {
			rawKeys = append(rawKeys, k)
		}
		sort.Strings(rawKeys)
		// Raw keys that normalize to the same string collapse to one entry;
		// the value of the last raw key in sorted order wins.
		byNorm := make(map[string]any, len(t))
		keys := make([]string, 0, len(t))
		for _, k := range rawKeys {
			nk := NormalizeString(k)
			if _, seen := byNorm[nk]; !seen {
				keys = append(keys, nk)
			}
			byNorm[nk] = t[k]
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONString(sb, k)
			sb.WriteByte(':')
			legacyRender(sb, byNorm[k], depth+1)
		}
		sb.WriteByte('}')
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			writeJSONString(sb, "[Function]")
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				sb.WriteString("null")
				return
			}
			legacyRender(sb, rv.Elem().Interface(), depth+1)
		default:
			writeJSONString(sb, NormalizeString(fmt.Sprint(v)))
		}
	}
}

func legacyNumber(sb *strings.Builder, f float64) {
	writeJSONString(sb, NormalizeNumber(f, DefaultPrecision))
}

// MethodComparison reports how the enhanced and legacy serializers differ on
// the same input.
type MethodComparison struct {
	Enhanced Result
	Legacy   LegacyResult
	// Identical is true when both modes produced the same text.
	Identical bool
	// LengthDifference is len(enhanced) - len(legacy).
	LengthDifference int
	// PerformanceImprovement is the legacy/enhanced duration ratio; values
	// above 1 mean the enhanced path was faster.
	PerformanceImprovement float64
	// TotalComparisonTime covers both serializations.
	TotalComparisonTime time.Duration
}

// LegacyResult is the legacy-mode slice of a comparison.
type LegacyResult struct {
	SerializedText string
	ProcessingTime time.Duration
}

// CompareSerializationMethods serializes v under both modes and reports the
// differences. Benchmarking aid only; the enhanced mode is authoritative.
func CompareSerializationMethods(v any, cfg Config) MethodComparison {
	start := time.Now()

	enhanced := Serialize(v, cfg)

	legacyStart := time.Now()
	legacyText := SerializeLegacy(v)
	legacyDur := time.Since(legacyStart)

	improvement := 0.0
	if enhanced.Stats.ProcessingTime > 0 {
		improvement = float64(legacyDur) / float64(enhanced.Stats.ProcessingTime)
	}

	return MethodComparison{
		Enhanced:               enhanced,
		Legacy:                 LegacyResult{SerializedText: legacyText, ProcessingTime: legacyDur},
		Identical:              enhanced.SerializedText == legacyText,
		LengthDifference:       len(enhanced.SerializedText) - len(legacyText),
		PerformanceImprovement: improvement,
		TotalComparisonTime:    time.Since(start),
	}
}
