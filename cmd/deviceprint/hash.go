package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigcore/deviceprint/identity"
	"github.com/sigcore/deviceprint/signal"
)

// NewHashCmd creates the hash command.
func NewHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <signals.json>",
		Short: "Compute the content hash of a signal document",
		Long: `Hash canonicalizes a signal document and prints its stable identifier.

The identifier is invariant under key/array reordering and float jitter in
the input document.

Examples:
  # Print the 64-hex-char content hash
  deviceprint hash signals.json

  # Also print the CIDv1 form and serialization statistics
  deviceprint hash --debug signals.json`,
		Args: cobra.ExactArgs(1),
		RunE: runHash,
	}
	cmd.Flags().Bool("debug", false, "Print serialization statistics and the CID form")
	return cmd
}

func runHash(cmd *cobra.Command, args []string) error {
	logger, cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	doc, err := readJSONDoc(args[0])
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if !debug {
		hash, err := identity.GenerateID(signal.Document(doc), &cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	}

	hash, info, err := identity.GenerateIDWithDebug(signal.Document(doc), &cfg)
	if err != nil {
		return err
	}
	cidForm, err := identity.GenerateCID(signal.Document(doc), &cfg)
	if err != nil {
		return err
	}
	stats := info.Serialization.Stats
	logger.Debug("serialized signal document",
		"properties", stats.TotalProperties,
		"normalized", stats.NormalizedValues,
		"maxDepth", stats.MaxDepthReached,
		"duration", stats.ProcessingTime,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "hash: %s\n", hash)
	fmt.Fprintf(cmd.OutOrStdout(), "cid:  %s\n", cidForm)
	fmt.Fprintf(cmd.OutOrStdout(), "properties: %d, normalized: %d, sortedObjects: %d, sortedArrays: %d, maxDepth: %d\n",
		stats.TotalProperties, stats.NormalizedValues, stats.SortedObjects, stats.SortedArrays, stats.MaxDepthReached)
	return nil
}
