package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigcore/deviceprint/canon"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <signals.json>",
		Short: "Compare enhanced and legacy serialization on a document",
		Long: `Compare serializes a signal document under both the enhanced and the
legacy mode and reports whether they agree, plus timing. Benchmarking aid;
the enhanced mode is authoritative.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	_, cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	doc, err := readJSONDoc(args[0])
	if err != nil {
		return err
	}

	c := canon.CompareSerializationMethods(doc, cfg)
	fmt.Fprintf(cmd.OutOrStdout(), "identical: %t\n", c.Identical)
	fmt.Fprintf(cmd.OutOrStdout(), "lengthDifference: %d\n", c.LengthDifference)
	fmt.Fprintf(cmd.OutOrStdout(), "performanceImprovement: %.2fx\n", c.PerformanceImprovement)
	fmt.Fprintf(cmd.OutOrStdout(), "totalComparisonTime: %s\n", c.TotalComparisonTime)
	return nil
}
