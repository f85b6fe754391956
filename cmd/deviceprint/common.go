package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigcore/deviceprint/canon"
	"github.com/sigcore/deviceprint/internal/config"
	"github.com/sigcore/deviceprint/internal/log"
)

// setup resolves the logger and serializer config shared by all commands.
func setup(cmd *cobra.Command) (*slog.Logger, canon.Config, string, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(verbose)

	cfg := canon.DefaultConfig()
	output := "json"

	explicit, _ := cmd.Flags().GetString("config")
	path := config.Find(explicit)
	if path == "" {
		if explicit != "" {
			return nil, cfg, "", fmt.Errorf("configuration file %s not found", explicit)
		}
		return logger, cfg, output, nil
	}

	cf, warnings, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return logger, cfg, output, nil
		}
		return nil, cfg, "", err
	}
	for _, w := range warnings {
		logger.Warn(w, "path", path)
	}
	cfg = cf.Serializer.Apply(cfg)
	if cf.Output != "" {
		output = cf.Output
	}
	logger.Debug("loaded configuration", "path", path)
	return logger, cfg, output, nil
}

// readJSONDoc decodes a JSON file into a generic document.
func readJSONDoc(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
