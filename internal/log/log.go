// Package log provides centralised audit logging for tzmcp operations.
// Logs are stored in ~/.tzmcp/log/tzmcp-log.db and track all CLI commands
// and MCP tool invocations.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("mcp:tezos_get_balance", "balance").
//		Network(network).
//		Target(address).
//		Write(err)
//
//	log.Event("chain:operations", "operations").
//		Network(network).
//		Target(address).
//		Detail("limit", limit).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
//
// Inputs recorded with Network and Target are the caller's raw values and
// may be invalid; they are scrubbed like error text and capped in length
// before storage. Every
// entry gets a fresh request id so a caller-reported failure can be matched
// to its audit row.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jpl-au/tzmcp/internal/sanitize"
	"github.com/jpl-au/tzmcp/internal/validate"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source    string // e.g., "chain:balance", "mcp:tezos_get_balance"
	Action    string // verb: balance, storage, operations, block, etc.
	RequestID string // uuid, unique per entry
	Network   string // input: network requested
	Target    string // input: address, operation hash or block level

	// Timing
	Start int64 // unix milliseconds when Event() called
	End   int64 // unix milliseconds when Write() called

	Success    bool           // whether operation succeeded
	Validation bool           // failure was a rejected input, not a backend fault
	Error      string         // scrubbed error message if failed
	Detail     map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "chain:balance")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:tezos_get_balance")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source:    source,
			Action:    action,
			RequestID: uuid.NewString(),
			Start:     time.Now().UnixMilli(),
		},
	}
}

// Network sets the network the caller asked for.
func (b *Builder) Network(network string) *Builder {
	b.entry.Network = network
	return b
}

// Target sets the address, hash or level the operation was aimed at.
func (b *Builder) Target(target string) *Builder {
	b.entry.Target = target
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// limits, result counts, pipeline names. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// RequestID returns the id assigned to this entry.
func (b *Builder) RequestID() string {
	return b.entry.RequestID
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful. If err is non-nil, the
// entry is logged as failed with the scrubbed error message, and flagged as
// a validation failure when err is a *validate.Error.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
		b.entry.Validation = validate.IsValidation(err)
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path of the directory tzmcp runs in.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// MaxInputLength is the rune limit for recorded caller inputs: Network,
// Target and string Detail values. It fits an operation hash.
const MaxInputLength = 64

// Log writes an entry. Safe to call if logger not initialised (no-op).
// Free-text fields are scrubbed before they reach the database, and caller
// inputs are then cut to MaxInputLength.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	e.Network = clip(sanitize.Log(e.Network))
	e.Target = clip(sanitize.Log(e.Target))
	e.Error = sanitize.Log(e.Error)
	for k, v := range e.Detail {
		if str, ok := v.(string); ok {
			e.Detail[k] = clip(sanitize.Log(str))
		}
	}
	l.log(e)
}

// clip cuts s to MaxInputLength runes, marking the cut.
func clip(s string) string {
	count := 0
	for i := range s {
		if count == MaxInputLength {
			return s[:i] + sanitize.TruncationMarker
		}
		count++
	}
	return s
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
