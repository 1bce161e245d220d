// Package extension provides the plugin architecture for tzmcp. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for tzmcp extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once the chain service exists.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Offline is an optional interface for extensions with commands that
// don't need the chain service. Commands returned by OfflineCommands() will
// not trigger service initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Commands that manage their own service lifecycle (serve)
// 2. Commands that only read embedded content (guide, version)
// 3. Text tools that need neither config nor network (scrub)
type Offline interface {
	OfflineCommands() []string
}
