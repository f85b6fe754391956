package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for deviceprint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deviceprint",
		Short: "Content-addressed identifiers for device signal documents",
		Long: `deviceprint canonicalizes collected browser/device signal documents and
derives a stable content hash plus a confidence report from them.

Key/array order, float representation jitter, and non-serializable values in
the input never change the identifier.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to run configuration file")

	// Add subcommands
	cmd.AddCommand(NewHashCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
