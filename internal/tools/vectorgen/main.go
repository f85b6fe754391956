// Command vectorgen emits a conformance vector: a fixed signal document,
// its canonical text, and the derived identifiers. Used to regenerate the
// expectations embedded in the identity tests.
package main

import (
	"fmt"

	"github.com/sigcore/deviceprint/canon"
	"github.com/sigcore/deviceprint/identity"
)

func vectorDocument() map[string]any {
	return map[string]any{
		"userAgent":        "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
		"platform":         "Linux x86_64",
		"screenResolution": []any{1920.0, 1080.0},
		"colorDepth":       24.0,
		"audio":            124.04344968795776,
		"languages":        []any{"en-US", "en"},
		"timezone":         "UTC",
		"cookiesEnabled":   true,
		"confidenceScore":  0.87,
		"touchSupport": map[string]any{
			"maxTouchPoints": 0.0,
			"touchEvent":     false,
			"touchStart":     false,
		},
	}
}

func main() {
	doc := vectorDocument()
	cfg := canon.DefaultConfig()

	res := canon.Serialize(doc, cfg)
	hash, err := identity.GenerateID(doc, &cfg)
	if err != nil {
		panic(err)
	}
	cid, err := identity.GenerateCID(doc, &cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("hash=%s\n", hash)
	fmt.Printf("cid=%s\n", cid)
	fmt.Printf("---BEGIN CANONICAL---\n%s\n---END CANONICAL---\n", res.SerializedText)
}
