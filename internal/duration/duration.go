// Package duration provides parsing for human-readable timeout strings.
//
// Timeouts are written as "500ms", "30s" or "2m" in config files and flags.
// Only whole numbers with a single unit are accepted; Go's full
// time.ParseDuration grammar ("1h2m3.5s") is more than a config value needs
// and makes typos harder to spot.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)(ms|s|m)$`)

// Parse parses duration strings in the format: Nms, Ns or Nm.
// Examples: "500ms", "30s", "2m".
func Parse(s string) (time.Duration, error) {
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 500ms, 30s, or 2m)", s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	switch matches[2] {
	case "ms":
		return time.Duration(num) * time.Millisecond, nil
	case "s":
		return time.Duration(num) * time.Second, nil
	case "m":
		return time.Duration(num) * time.Minute, nil
	default:
		return 0, fmt.Errorf("invalid duration unit: %s", matches[2])
	}
}

// Format renders d in the largest unit that represents it exactly.
func Format(d time.Duration) string {
	switch {
	case d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	case d%time.Second == 0:
		return fmt.Sprintf("%ds", d/time.Second)
	default:
		return fmt.Sprintf("%dms", d/time.Millisecond)
	}
}
