// Package core provides the core extension for tzmcp.
// It registers commands: serve, config, guide, llm, log, version.
package core

import (
	"github.com/jpl-au/tzmcp/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Offline   = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newServeCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the guide tool is built into the server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// OfflineCommands returns commands that don't use the shared chain service.
// serve: builds its own service with a stderr process log.
// llm, log, version: read embedded or local data only.
func (e *Extension) OfflineCommands() []string {
	return []string{"serve", "llm", "log", "version"}
}
