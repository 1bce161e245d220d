// mcp.go defines types for MCP tool registration by extensions.
//
// Separated from extension.go to isolate MCP-specific concerns. Most
// extensions only provide CLI commands; the chain tools are registered by
// the server itself.
//
// Design: MCPTool pairs the tool definition with its handler. The server
// binds each handler to its own Context when it starts, so a tool sees the
// same chain service as the built-in tools.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The Context provides access to the chain service and configuration.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
