package main

import (
	"github.com/spf13/cobra"
)

// addOutputFlags registers the --json flag on commands that produce
// structured output.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
}

// isSettingsOrHelp reports whether cmd runs without a loaded dataset.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		// Bare invocation prints help.
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "version", "help", "completion":
			return true
		}
	}
	return false
}
