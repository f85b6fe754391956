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

// Replacer is a pre-normalization key/value transform (for example,
// redaction). It runs once per key/value pair before any normalization and
// may substitute the value. Array elements see their index as the key; the
// root value sees "".
type Replacer func(key string, value any) any

// Config controls canonical serialization. The zero MaxDepth means the
// default; use DefaultConfig as the starting point.
type Config struct {
	// EnableNormalization applies string and number normalization
	// (whitespace collapse, NFC, fixed-precision rounding). Default true.
	EnableNormalization bool
	// SortKeys orders object entries ascending by normalized key. Default true.
	SortKeys bool
	// SortArrays orders array elements by their canonical string form;
	// disabling it preserves original order. Default true.
	SortArrays bool
	// MaxDepth bounds recursion. Branches beyond it resolve to the
	// MaxDepthExceeded sentinel. Default 50.
	MaxDepth int
	// IncludeNulls keeps object entries whose normalized value is null.
	// Default true.
	IncludeNulls bool
	// IncludeUndefined keeps object entries carrying the Undefined marker.
	// Default true.
	IncludeUndefined bool
	// Replacer, when set, transforms each key/value pair before
	// normalization. Default none.
	Replacer Replacer
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		EnableNormalization: true,
		SortKeys:            true,
		SortArrays:          true,
		MaxDepth:            50,
		IncludeNulls:        true,
		IncludeUndefined:    true,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = 50
	}
	return c
}

// Stats are monotonic counters accumulated over one serialization pass.
type Stats struct {
	TotalProperties  int           `json:"totalProperties"`
	NormalizedValues int           `json:"normalizedValues"`
	SortedObjects    int           `json:"sortedObjects"`
	SortedArrays     int           `json:"sortedArrays"`
	MaxDepthReached  int           `json:"maxDepthReached"`
	ProcessingTime   time.Duration `json:"processingTimeNanos"`
}

// Result is the outcome of one serialization pass. It is ephemeral:
// recomputed per call and never persisted by this package.
type Result struct {
	SerializedText string
	Canonical      Value
	Stats          Stats
}

// Serialize produces the canonical text form of an arbitrary value.
//
// Serialize never fails: malformed, cyclic, or arbitrarily deep input
// resolves to deterministic sentinels. The output is a pure function of the
// value and config; no wall-clock or random input enters the canonical form.
func Serialize(v any, cfg Config) Result {
	start := time.Now()
	w := newWalker(cfg)
	cv := w.walk("", v, 0)
	text := cv.Render()
	w.stats.ProcessingTime = time.Since(start)
	return Result{SerializedText: text, Canonical: cv, Stats: w.stats}
}

type walker struct {
	cfg    Config
	stats  Stats
	onPath map[uintptr]struct{} // object identities on the current recursion path
}

func newWalker(cfg Config) *walker {
	return &walker{cfg: cfg.withDefaults(), onPath: make(map[uintptr]struct{})}
}

func (w *walker) walk(key string, v any, depth int) Value {
	if w.cfg.Replacer != nil {
		v = w.cfg.Replacer(key, v)
	}
	return w.walkResolved(v, depth)
}

func (w *walker) walkResolved(v any, depth int) Value {
	if depth > w.stats.MaxDepthReached {
		w.stats.MaxDepthReached = depth
	}
	if depth > w.cfg.MaxDepth {
		return sentinel(SentinelMaxDepthExceeded, "")
	}

	switch t := v.(type) {
	case nil:
		return Null()
	case UndefinedValue:
		return Null()
	case Value:
		return t
	case string:
		return w.stringValue(t)
	case bool:
		return Bool(t)
	case float64:
		return w.floatValue(t)
	case float32:
		return w.floatValue(float64(t))
	case int:
		return w.intValue(strconv.FormatInt(int64(t), 10))
	case int8:
		return w.intValue(strconv.FormatInt(int64(t), 10))
	case int16:
		return w.intValue(strconv.FormatInt(int64(t), 10))
	case int32:
		return w.intValue(strconv.FormatInt(int64(t), 10))
	case int64:
		return w.intValue(strconv.FormatInt(t, 10))
	case uint:
		return w.intValue(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return w.intValue(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return w.intValue(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return w.intValue(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return w.intValue(strconv.FormatUint(t, 10))
	case []byte:
		return sentinel(SentinelBinaryEmpty, "")
	case *big.Int:
		if t == nil {
			return Null()
		}
		return sentinel(SentinelBigint, t.String())
	case big.Int:
		return sentinel(SentinelBigint, t.String())
	case Symbol:
		return sentinel(SentinelUnsupportedSymbol, string(t))
	case []any:
		if t == nil {
			return Null()
		}
		p := reflect.ValueOf(t).Pointer()
		if !w.enter(p) {
			return sentinel(SentinelMaxDepthExceeded, "")
		}
		defer w.leave(p)
		return w.listValue(t, depth)
	case map[string]any:
		if t == nil {
			return Null()
		}
		p := reflect.ValueOf(t).Pointer()
		if !w.enter(p) {
			return sentinel(SentinelMaxDepthExceeded, "")
		}
		defer w.leave(p)
		return w.mapValueFromStringMap(t, depth)
	}

	return w.walkReflect(reflect.ValueOf(v), depth)
}

func (w *walker) walkReflect(rv reflect.Value, depth int) Value {
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return sentinel(SentinelUnsupportedFunction, "")
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		p := rv.Pointer()
		if !w.enter(p) {
			return sentinel(SentinelMaxDepthExceeded, "")
		}
		defer w.leave(p)
		return w.walkResolved(rv.Elem().Interface(), depth)
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return w.walkResolved(rv.Elem().Interface(), depth)
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		p := rv.Pointer()
		if !w.enter(p) {
			return sentinel(SentinelMaxDepthExceeded, "")
		}
		defer w.leave(p)
		return w.listValue(reflectSliceItems(rv), depth)
	case reflect.Array:
		return w.listValue(reflectSliceItems(rv), depth)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		p := rv.Pointer()
		if !w.enter(p) {
			return sentinel(SentinelMaxDepthExceeded, "")
		}
		defer w.leave(p)
		return w.mapValue(reflectMapItems(rv), depth)
	case reflect.Struct:
		return w.mapValue(structItems(rv), depth)
	case reflect.String:
		return w.stringValue(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.intValue(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.intValue(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return w.floatValue(rv.Float())
	default:
		// Remaining kinds (complex, invalid) coerce to text like any other
		// non-string scalar.
		return w.stringValue(fmt.Sprint(rv.Interface()))
	}
}

func (w *walker) stringValue(s string) Value {
	if w.cfg.EnableNormalization {
		w.stats.NormalizedValues++
		return String(NormalizeString(s))
	}
	return String(s)
}

func (w *walker) floatValue(f float64) Value {
	if w.cfg.EnableNormalization {
		w.stats.NormalizedValues++
		return Number(NormalizeNumber(f, DefaultPrecision))
	}
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func (w *walker) intValue(digits string) Value {
	if w.cfg.EnableNormalization {
		w.stats.NormalizedValues++
		return Number(normalizeInt(digits, DefaultPrecision))
	}
	return Number(digits)
}

func (w *walker) listValue(items []any, depth int) Value {
	list := make([]Value, 0, len(items))
	for i, it := range items {
		if w.cfg.Replacer != nil {
			it = w.cfg.Replacer(strconv.Itoa(i), it)
		}
		list = append(list, w.walkResolved(it, depth+1))
	}
	if w.cfg.SortArrays && len(list) > 1 {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Render() < list[j].Render()
		})
		w.stats.SortedArrays++
	}
	return Value{Kind: KindList, List: list}
}

type rawEntry struct {
	key   string
	value any
}

func (w *walker) mapValue(items []rawEntry, depth int) Value {
	entries := make([]MapEntry, 0, len(items))
	for _, it := range items {
		raw := it.value
		if w.cfg.Replacer != nil {
			raw = w.cfg.Replacer(it.key, raw)
		}
		if _, undef := raw.(UndefinedValue); undef && !w.cfg.IncludeUndefined {
			continue
		}
		cv := w.walkResolved(raw, depth+1)
		if cv.Kind == KindNull && !w.cfg.IncludeNulls {
			continue
		}
		key := it.key
		if w.cfg.EnableNormalization {
			key = NormalizeString(key)
		}
		entries = append(entries, MapEntry{Key: key, Value: cv})
	}
	w.stats.TotalProperties += len(entries)
	if w.cfg.SortKeys && len(entries) > 1 {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Key < entries[j].Key
		})
		w.stats.SortedObjects++
	}
	return Value{Kind: KindMap, Map: entries}
}

func (w *walker) enter(p uintptr) bool {
	if _, ok := w.onPath[p]; ok {
		return false
	}
	w.onPath[p] = struct{}{}
	return true
}

func (w *walker) leave(p uintptr) {
	delete(w.onPath, p)
}

func reflectSliceItems(rv reflect.Value) []any {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// reflectMapItems coerces arbitrary map keys to text. Iteration order is
// fixed by sorting the raw key text so replacer side effects and duplicate
// merging stay deterministic regardless of Go map ordering.
func reflectMapItems(rv reflect.Value) []rawEntry {
	items := make([]rawEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		items = append(items, rawEntry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value().Interface()})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })
	return items
}

func (w *walker) mapValueFromStringMap(m map[string]any, depth int) Value {
	return w.mapValue(stringMapItems(m), depth)
}

func stringMapItems(m map[string]any) []rawEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]rawEntry, 0, len(m))
	for _, k := range keys {
		items = append(items, rawEntry{key: k, value: m[k]})
	}
	return items
}

// structItems walks exported fields, honoring json tag names and skipping
// fields tagged "-".
func structItems(rv reflect.Value) []rawEntry {
	rt := rv.Type()
	items := make([]rawEntry, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		items = append(items, rawEntry{key: name, value: rv.Field(i).Interface()})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })
	return items
}
