package identity

import (
	"regexp"
	"testing"

	"github.com/sigcore/deviceprint/canon"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{64}$`)

// docVariantA and docVariantB are the same logical document built with
// different key insertion and array orders.
func docVariantA() map[string]any {
	return map[string]any{
		"userAgent": "Mozilla/5.0 (X11; Linux x86_64)",
		"languages": []any{"en-US", "en", "de"},
		"plugins": []any{
			map[string]any{"name": "pdf", "description": "PDF Viewer"},
			map[string]any{"name": "nacl", "description": "Native Client"},
		},
		"audio":           124.04344968795776,
		"confidenceScore": 0.87,
	}
}

func docVariantB() map[string]any {
	return map[string]any{
		"confidenceScore": 0.8700000000001, // sub-precision jitter
		"audio":           124.04344968795,
		"plugins": []any{
			map[string]any{"description": "Native Client", "name": "nacl"},
			map[string]any{"description": "PDF Viewer", "name": "pdf"},
		},
		"languages": []any{"de", "en", "en-US"},
		"userAgent": "Mozilla/5.0 (X11; Linux x86_64)",
	}
}

func TestGenerateID_Shape(t *testing.T) {
	id, err := GenerateID(docVariantA(), nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	if !hexID.MatchString(id) {
		t.Fatalf("identifier is not 64 lowercase hex chars: %q", id)
	}
}

func TestGenerateID_Determinism_ReorderedClones(t *testing.T) {
	golden, err := GenerateID(docVariantA(), nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	for run := 0; run < 10; run++ {
		a, err := GenerateID(docVariantA(), nil)
		if err != nil {
			t.Fatalf("GenerateID(A) run %d: %v", run, err)
		}
		b, err := GenerateID(docVariantB(), nil)
		if err != nil {
			t.Fatalf("GenerateID(B) run %d: %v", run, err)
		}
		if a != golden || b != golden {
			t.Fatalf("identifier changed across runs/reorderings: %s %s %s", golden, a, b)
		}
	}
}

func TestGenerateID_DifferentDocumentsDiffer(t *testing.T) {
	a, err := GenerateID(map[string]any{"x": 1.0}, nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	b, err := GenerateID(map[string]any{"x": 2.0}, nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	if a == b {
		t.Fatalf("distinct documents collided: %s", a)
	}
}

func TestGenerateID_ConfigChangesID(t *testing.T) {
	doc := map[string]any{"x": []any{"b", "a"}}
	sorted, err := GenerateID(doc, nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	cfg := canon.DefaultConfig()
	cfg.SortArrays = false
	unsorted, err := GenerateID(doc, &cfg)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	if sorted == unsorted {
		t.Fatalf("array-sort policy should change the identifier")
	}
}

func TestGenerateIDWithDebug_SameHash(t *testing.T) {
	id, err := GenerateID(docVariantA(), nil)
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	idDebug, info, err := GenerateIDWithDebug(docVariantA(), nil)
	if err != nil {
		t.Fatalf("GenerateIDWithDebug: %v", err)
	}
	if idDebug != id {
		t.Fatalf("debug path changed the hash: %s vs %s", idDebug, id)
	}
	if info == nil || info.Serialization.SerializedText == "" {
		t.Fatalf("debug info missing serialization result")
	}
}

func TestGenerateID_HostileInputStillHashes(t *testing.T) {
	cyclic := map[string]any{"fn": func() {}}
	cyclic["self"] = cyclic
	id, err := GenerateID(cyclic, nil)
	if err != nil {
		t.Fatalf("GenerateID on cyclic doc: %v", err)
	}
	if !hexID.MatchString(id) {
		t.Fatalf("identifier is not 64 lowercase hex chars: %q", id)
	}
}

func TestGenerateCID_Consistent(t *testing.T) {
	a, err := GenerateCID(docVariantA(), nil)
	if err != nil {
		t.Fatalf("GenerateCID: %v", err)
	}
	b, err := GenerateCID(docVariantB(), nil)
	if err != nil {
		t.Fatalf("GenerateCID: %v", err)
	}
	if a != b {
		t.Fatalf("CID forms disagree across reorderings: %s vs %s", a, b)
	}
}
