// resources.go implements MCP resource handlers.
//
// The networks resource lets a client read which networks it may name and
// which numeric limits apply without spending a tool call on a rejection.
//
// Design: Endpoint URLs come from operator configuration and may carry
// credentials, so they pass through the error sanitizer before they are
// published.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/sanitize"
	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// NetworksURI is the URI of the networks resource.
const NetworksURI = "tezos://networks"

// networkInfo describes one supported network.
type networkInfo struct {
	Name    string `json:"name"`
	Node    string `json:"node"`
	Indexer string `json:"indexer"`
}

// networksDoc is the body of the networks resource.
type networksDoc struct {
	Default      string        `json:"default"`
	Networks     []networkInfo `json:"networks"`
	DefaultLimit int64         `json:"default_limit"`
	MaxLimit     int64         `json:"max_limit"`
	MaxAmount    int64         `json:"max_amount_mutez"`
}

// networks builds the resource body from configuration.
func (h *handlers) networks() networksDoc {
	limits := h.svc.Limits()
	doc := networksDoc{
		Default:      DefaultNetwork,
		DefaultLimit: min(chain.DefaultLimit, limits.MaxLimit),
		MaxLimit:     limits.MaxLimit,
		MaxAmount:    limits.MaxAmount,
	}
	for _, n := range validate.Networks() {
		doc.Networks = append(doc.Networks, networkInfo{
			Name:    n.String(),
			Node:    sanitize.Error(h.cfg.Node(n)),
			Indexer: sanitize.Error(h.cfg.Indexer(n)),
		})
	}
	return doc
}

// readNetworks handles tezos://networks resource requests.
func (h *handlers) readNetworks(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.networks(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
