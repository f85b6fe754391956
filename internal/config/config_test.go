package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sigcore/deviceprint/canon"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
serializer:
  sortArrays: false
  maxDepth: 10
output: markdown
`)
	cf, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cf.Output != "markdown" {
		t.Fatalf("Output = %q", cf.Output)
	}
	if cf.Serializer.SortArrays == nil || *cf.Serializer.SortArrays {
		t.Fatalf("sortArrays not loaded: %+v", cf.Serializer)
	}
	if cf.Serializer.MaxDepth == nil || *cf.Serializer.MaxDepth != 10 {
		t.Fatalf("maxDepth not loaded: %+v", cf.Serializer)
	}
	if cf.Serializer.SortKeys != nil {
		t.Fatalf("absent option must stay unset")
	}
}

func TestLoad_UnknownKeyWarnings(t *testing.T) {
	path := writeConfig(t, `
serializer:
  sortKeys: true
  sortKeyz: true
outputt: json
`)
	_, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		`unknown configuration key "outputt"`,
		`unknown serializer option "sortKeyz"`,
	}
	if !reflect.DeepEqual(warnings, want) {
		t.Fatalf("warnings = %v, want %v", warnings, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "serializer: [\n")
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApply(t *testing.T) {
	f := false
	depth := 7
	s := Serializer{SortArrays: &f, MaxDepth: &depth}

	cfg := s.Apply(canon.DefaultConfig())
	if cfg.SortArrays {
		t.Fatalf("SortArrays not overridden")
	}
	if cfg.MaxDepth != 7 {
		t.Fatalf("MaxDepth = %d", cfg.MaxDepth)
	}
	// Unset options keep their defaults.
	if !cfg.SortKeys || !cfg.EnableNormalization || !cfg.IncludeNulls {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestFind_Explicit(t *testing.T) {
	path := writeConfig(t, "output: json\n")
	if got := Find(path); got != path {
		t.Fatalf("Find = %q, want %q", got, path)
	}
	if got := Find(filepath.Join(t.TempDir(), "absent.yml")); got != "" {
		t.Fatalf("Find for missing explicit path = %q, want empty", got)
	}
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("output: json\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	got := Find("")
	if filepath.Base(got) != DefaultConfigFile {
		t.Fatalf("Find = %q", got)
	}
}
