// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDiff    = "diff"    // Show a diff of raw and scrubbed text
	FlagExplain = "explain" // List which sanitizer passes changed the text
	FlagLocal   = "local"   // Use local scope (.tzmcp/config.yaml)
	FlagLog     = "log"     // Use the log pipeline instead of the error pipeline

	// String flags

	FlagSource = "source" // Audit entry source filter (e.g., "mcp:tezos_get_balance")

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
