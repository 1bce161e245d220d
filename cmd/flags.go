/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The network flag is passed on raw; the chain service
// validates it like any other caller input.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

// DefaultNetwork is used when neither --network nor TEZOS_NETWORK is set.
const DefaultNetwork = "mainnet"

var (
	output  string
	network string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Network returns the requested network, unvalidated.
// Priority: --network flag > TEZOS_NETWORK env var > mainnet.
func Network() string {
	if network != "" {
		return network
	}
	if v := os.Getenv("TEZOS_NETWORK"); v != "" {
		return v
	}
	return DefaultNetwork
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "", "Network: mainnet, shadownet or ghostnet (env TEZOS_NETWORK)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("network", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validate.NetworkNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
