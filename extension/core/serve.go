// serve.go implements the "tzmcp serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.
//
// Design: Serve is an offline command - it loads config and builds its own
// chain service instead of using the shared one from root.go, so that its
// process log can go to stderr.

package core

import (
	"fmt"

	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server is named "tezos" and exposes read-only query tools. Endpoints
and limits come from config and the TEZOS_<NETWORK>_NODE/INDEXER
environment variables.

  tzmcp serve

See 'tzmcp guide tools' for the tool list.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	return mcp.Serve(cfg)
}
