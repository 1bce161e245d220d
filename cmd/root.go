/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE builds the chain service lazily: only commands
// that query a network trigger extension init. Offline commands skip it, so
// guide, version and scrub keep working when the configuration is invalid,
// and config reports the broken file itself instead of an init failure.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tzmcp",
	Short: "Read-only Tezos gateway for LLM agents",
	Long: `A Model Context Protocol server and CLI for querying Tezos nodes and indexers.

Every argument is validated before it reaches the network, and every error is
scrubbed of paths, credentials and secrets before it is shown.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		if !offlineCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "tzmcp balance tz1...", returns "balance".
// For "tzmcp check address tz1...", returns "check".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
