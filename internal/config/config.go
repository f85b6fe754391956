// Package config loads CLI run configuration from a YAML file.
//
// The recognized serializer options mirror canon.Config exactly. Unknown
// keys are a caller-facing warning, never an error: the core's behavior is
// defined for every input, and a typo in a config file should not stop a
// report from being produced.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sigcore/deviceprint/canon"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".deviceprint.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Serializer holds the recognized serializer options. Pointer fields
// distinguish "unset" from an explicit false/zero so defaults survive
// partial files.
type Serializer struct {
	EnableNormalization *bool `yaml:"enableNormalization"`
	SortKeys            *bool `yaml:"sortKeys"`
	SortArrays          *bool `yaml:"sortArrays"`
	MaxDepth            *int  `yaml:"maxDepth"`
	IncludeNulls        *bool `yaml:"includeNulls"`
	IncludeUndefined    *bool `yaml:"includeUndefined"`
}

// File is the full run configuration.
type File struct {
	Serializer Serializer `yaml:"serializer"`
	// Output selects the report format: "json" or "markdown".
	Output string `yaml:"output"`
}

// Apply overlays the file's explicit settings onto a serializer config.
func (s Serializer) Apply(cfg canon.Config) canon.Config {
	if s.EnableNormalization != nil {
		cfg.EnableNormalization = *s.EnableNormalization
	}
	if s.SortKeys != nil {
		cfg.SortKeys = *s.SortKeys
	}
	if s.SortArrays != nil {
		cfg.SortArrays = *s.SortArrays
	}
	if s.MaxDepth != nil {
		cfg.MaxDepth = *s.MaxDepth
	}
	if s.IncludeNulls != nil {
		cfg.IncludeNulls = *s.IncludeNulls
	}
	if s.IncludeUndefined != nil {
		cfg.IncludeUndefined = *s.IncludeUndefined
	}
	return cfg
}

var knownTopKeys = map[string]bool{"serializer": true, "output": true}

var knownSerializerKeys = map[string]bool{
	"enableNormalization": true,
	"sortKeys":            true,
	"sortArrays":          true,
	"maxDepth":            true,
	"includeNulls":        true,
	"includeUndefined":    true,
}

// Load reads a run configuration. It returns the parsed file plus a warning
// per unrecognized key. A missing file returns ErrConfigNotFound.
func Load(path string) (*File, []string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrConfigNotFound
		}
		return nil, nil, err
	}

	warnings := unknownKeyWarnings(data)

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, nil, err
	}
	return &cf, warnings, nil
}

// unknownKeyWarnings decodes the raw tree and reports keys outside the
// enumerated option set.
func unknownKeyWarnings(data []byte) []string {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}
	var warnings []string
	for k, v := range raw {
		if !knownTopKeys[k] {
			warnings = append(warnings, fmt.Sprintf("unknown configuration key %q", k))
			continue
		}
		if k != "serializer" {
			continue
		}
		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		for sk := range sub {
			if !knownSerializerKeys[sk] {
				warnings = append(warnings, fmt.Sprintf("unknown serializer option %q", sk))
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

// Find searches for the configuration file: an explicit path wins; otherwise
// the current directory, then the user's home directory. Returns "" when no
// file is found.
func Find(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
