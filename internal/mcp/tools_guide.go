// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the same embedded pages as "tzmcp guide",
// so a client can learn the input rules before its first call fails.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/tzmcp/guide"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles tezos_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := stringArg(req, "topic", "")
	if err != nil {
		return mcp.NewToolResultError(h.svc.Fail("guide", err)), nil
	}

	content, err := guide.Get(topic)

	log.Event("mcp:tezos_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// Unknown topic: return the list so the client can pick one.
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            fmt.Sprintf("guide %q not found", topic),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
