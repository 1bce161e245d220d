package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, "ok", Status(log.Entry{Success: true}))
	assert.Equal(t, "rejected", Status(log.Entry{Validation: true}))
	assert.Equal(t, "failed", Status(log.Entry{}))
}

func TestEntries(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-3 * time.Minute).UnixMilli()
	entries := []log.Entry{
		{Source: "mcp:tezos_get_balance", Network: "ghostnet", Target: "tz1abc", Start: start, End: start + 42, Success: true},
		{Source: "check:limit", RequestID: "r-1", Start: start, End: start, Validation: true, Error: "limit must be positive"},
	}

	var buf bytes.Buffer
	assert.NoError(t, Entries(&buf, entries, now))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "WHEN"))
	assert.Contains(t, lines[1], "3 minutes ago")
	assert.Contains(t, lines[1], "ok")
	assert.Contains(t, lines[1], "42")
	assert.Contains(t, lines[1], "tz1abc")
	assert.Contains(t, lines[2], "rejected")
	assert.Equal(t, "    r-1: limit must be positive", lines[3])

	// SOURCE is padded to the longest source, so NETWORK lines up.
	col := strings.Index(lines[0], "NETWORK")
	assert.Equal(t, "ghostnet", lines[1][col:col+len("ghostnet")])
	assert.Equal(t, "-", lines[2][col:col+1])
}

func TestEntries_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Entries(&buf, nil, time.Now()))
	assert.Empty(t, buf.String())
}

func TestEntry(t *testing.T) {
	got := Entry(log.Entry{Source: "scrub:scrub", Start: 0, End: 5, Detail: map[string]any{"pipeline": "log"}})
	assert.Equal(t, "failed", got["status"])
	assert.Equal(t, int64(5), got["elapsed_ms"])
	assert.Equal(t, "1970-01-01T00:00:00Z", got["start"])
}
