// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and relative timestamps.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/tzmcp/internal/log"
)

// Status names an audit entry's outcome: ok, rejected (validation) or
// failed (backend).
func Status(e log.Entry) string {
	switch {
	case e.Success:
		return "ok"
	case e.Validation:
		return "rejected"
	default:
		return "failed"
	}
}

// Entries prints audit entries in long format.
//
// Column order is WHEN, STATUS, MS, SOURCE, NETWORK, TARGET. Fixed-width
// columns come first so they align; the error, when there is one, goes on
// its own indented line below, keyed by request id.
func Entries(w io.Writer, entries []log.Entry, now time.Time) error {
	if len(entries) == 0 {
		return nil
	}

	// Find max source length for alignment
	maxSource := 6 // minimum "SOURCE"
	for _, e := range entries {
		if len(e.Source) > maxSource {
			maxSource = len(e.Source)
		}
	}

	fmt.Fprintf(w, "%-16s  %-8s  %6s  %-*s  %-9s  %s\n", "WHEN", "STATUS", "MS", maxSource, "SOURCE", "NETWORK", "TARGET")

	for _, e := range entries {
		when := humanize.RelTime(time.UnixMilli(e.Start), now, "ago", "from now")
		network := e.Network
		if network == "" {
			network = "-"
		}
		target := e.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "%-16s  %-8s  %6d  %-*s  %-9s  %s\n",
			when, Status(e), e.End-e.Start, maxSource, e.Source, network, target)
		if e.Error != "" {
			fmt.Fprintf(w, "    %s: %s\n", e.RequestID, e.Error)
		}
	}
	return nil
}

// Entry returns the JSON shape of one audit entry.
func Entry(e log.Entry) map[string]any {
	return map[string]any{
		"request_id": e.RequestID,
		"source":     e.Source,
		"action":     e.Action,
		"network":    e.Network,
		"target":     e.Target,
		"status":     Status(e),
		"start":      time.UnixMilli(e.Start).UTC().Format(time.RFC3339Nano),
		"elapsed_ms": e.End - e.Start,
		"error":      e.Error,
		"detail":     e.Detail,
	}
}
