package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigcore/deviceprint/geo"
	"github.com/sigcore/deviceprint/report"
	"github.com/sigcore/deviceprint/signal"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Assemble a composite fingerprint report",
		Long: `Report merges a signal document, an optional geolocation lookup result,
the confidence assessments, and the content hash into one report.

Examples:
  # Report from signals alone
  deviceprint report --signals signals.json

  # Include a geolocation document and a combined score
  deviceprint report --signals signals.json --geo geo.json --combined-score 0.72

  # Markdown output
  deviceprint report --signals signals.json --format markdown`,
		RunE: runReport,
	}
	cmd.Flags().String("signals", "", "Path to the signal document (required)")
	cmd.Flags().String("geo", "", "Path to the geolocation document")
	cmd.Flags().Float64("combined-score", -1, "Combined system+network score in [0,1]")
	cmd.Flags().String("format", "", "Output format: json or markdown")
	_ = cmd.MarkFlagRequired("signals")
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	logger, cfg, output, err := setup(cmd)
	if err != nil {
		return err
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		output = f
	}

	signalsPath, _ := cmd.Flags().GetString("signals")
	doc, err := readJSONDoc(signalsPath)
	if err != nil {
		return err
	}

	var geoDoc *geo.Document
	if geoPath, _ := cmd.Flags().GetString("geo"); geoPath != "" {
		data, err := os.ReadFile(geoPath) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return err
		}
		geoDoc = &geo.Document{}
		if err := json.Unmarshal(data, geoDoc); err != nil {
			return fmt.Errorf("decode %s: %w", geoPath, err)
		}
	}

	var combined *float64
	if score, _ := cmd.Flags().GetFloat64("combined-score"); score >= 0 {
		combined = &score
	}

	composite, err := report.Assemble(geoDoc, signal.Document(doc), combined, &cfg)
	if err != nil {
		return err
	}
	logger.Debug("assembled report", "hash", composite.Hash,
		"level", composite.ConfidenceAssessment.System.Level)

	switch output {
	case "markdown":
		return report.NewMarkdownWriter(cmd.OutOrStdout()).Write(composite)
	case "", "json":
		return report.NewJSONWriter(cmd.OutOrStdout()).Write(composite)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
