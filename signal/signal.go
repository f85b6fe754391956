// Package signal defines the tolerant view over externally collected
// browser/device signal documents.
//
// A Document is owned by the collector that built it; this module only reads
// it. Every accessor degrades gracefully: absent or mistyped fields yield
// zero values, never errors.
package signal

// Document is a nested mapping of named signals: strings, numbers, booleans,
// nested maps, ordered lists, and occasionally values that have no JSON
// representation (callables, binary buffers). The canonical serializer is
// responsible for taming those.
type Document map[string]any

// Bot is the bot-detection block reported by the collector.
type Bot struct {
	IsBot      bool
	Signals    []string
	Confidence float64
}

// ConfidenceScore returns the caller-supplied aggregate signal-quality
// number, clamped to [0,1]. Missing or mistyped values read as 0.
func (d Document) ConfidenceScore() float64 {
	return clamp01(asFloat(d["confidenceScore"]))
}

// Bot returns the bot block, zero-valued when absent.
func (d Document) Bot() Bot {
	m := asMap(d["bot"])
	if m == nil {
		return Bot{}
	}
	return Bot{
		IsBot:      asBool(m["isBot"]),
		Signals:    asStringSlice(m["signals"]),
		Confidence: asFloat(m["confidence"]),
	}
}

// Timezone returns the collector-reported IANA timezone name, or "".
func (d Document) Timezone() string {
	return asString(d["timezone"])
}

// IncognitoPrivate reports whether the collector flagged a private browsing
// context.
func (d Document) IncognitoPrivate() bool {
	m := asMap(d["incognito"])
	if m == nil {
		return false
	}
	return asBool(m["isPrivate"])
}

func clamp01(f float64) float64 {
	switch {
	case f != f: // NaN
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	}
	return 0
}

func asStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
