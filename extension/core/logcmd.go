// logcmd.go implements the "tzmcp log" command for reading the audit log.
//
// Entries are stored already scrubbed, so they are printed as they are.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/format"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/spf13/cobra"
)

// logLimit bounds how many entries one call may print.
var logLimit = validate.Bounds{Name: "limit", Min: 1, Max: 1000}

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show recent audit log entries, newest first.

  tzmcp log
  tzmcp log --limit 50
  tzmcp log --source mcp:tezos_get_balance

The audit log lives at ~/.tzmcp/log/tzmcp-log.db.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "l", 20, "Number of entries to show (1-1000)")
	c.Flags().String(extension.FlagSource, "", "Only show entries from this source")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	n, _ := c.Flags().GetInt(extension.FlagLimit)
	source, _ := c.Flags().GetString(extension.FlagSource)

	limit, err := logLimit.Check(n)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	// A source filter scans the widest window and trims afterwards.
	fetch := limit
	if source != "" {
		fetch = logLimit.Max
	}
	entries, err := log.Recent(int(fetch))
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if source != "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Source == source {
				kept = append(kept, e)
			}
		}
		entries = kept[:min(len(kept), int(limit))]
	}

	if cmd.JSON() {
		rows := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, format.Entry(e))
		}
		return cmd.PrintJSON(rows)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.Out(), "no audit entries")
		return nil
	}
	return format.Entries(cmd.Out(), entries, time.Now())
}
