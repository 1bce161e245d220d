// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence.
// Using SQLite enables structured filtering (by network, by source, validation
// failures only) that plain text logs cannot provide. The project field uses a
// hash of the working directory so entries can be grouped without recording
// the path itself.
//
// Design: Errors during logging are reported to stderr and otherwise ignored
// (best-effort). A balance lookup should succeed even if we can't record it
// in the audit log.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	_, err := l.db.Exec(`
		INSERT INTO log (request_id, start, end, project, source, action, network, target,
		                 success, validation, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Network), nilIfEmpty(e.Target),
		boolInt(e.Success), boolInt(e.Validation), nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "tzmcp: audit log write failed: %v\n", err)
	}
}

// Recent returns up to limit entries, newest first. Returns nil if the
// logger is not open.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}

	rows, err := l.db.Query(`
		SELECT request_id, start, end, source, action,
		       COALESCE(network, ''), COALESCE(target, ''),
		       success, validation, COALESCE(error, ''), detail
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var success, validation int
		var detail sql.NullString
		if err := rows.Scan(&e.RequestID, &e.Start, &e.End, &e.Source, &e.Action,
			&e.Network, &e.Target, &success, &validation, &e.Error, &detail); err != nil {
			return nil, fmt.Errorf("scanning audit log: %w", err)
		}
		e.Success = success == 1
		e.Validation = validation == 1
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined
		// (containers without a home directory).
		return filepath.Join(".tzmcp", "log", "tzmcp-log.db")
	}
	return filepath.Join(home, ".tzmcp", "log", "tzmcp-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL,
			start      INTEGER NOT NULL,
			end        INTEGER NOT NULL,
			project    TEXT NOT NULL,
			source     TEXT NOT NULL,
			action     TEXT NOT NULL,
			network    TEXT,
			target     TEXT,
			success    INTEGER NOT NULL,
			validation INTEGER NOT NULL DEFAULT 0,
			error      TEXT,
			detail     TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
		CREATE INDEX IF NOT EXISTS idx_log_network ON log(network);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
