// Package main provides the entry point for the deviceprint CLI.
//
// deviceprint computes stable content-addressed identifiers and confidence
// reports from collected browser/device signal documents.
//
// Usage:
//
//	deviceprint hash <signals.json>
//	deviceprint report --signals <signals.json> [--geo <geo.json>]
//
// See --help for all available options.
package main

// main is the entry point for deviceprint.
func main() {
	Execute()
}
