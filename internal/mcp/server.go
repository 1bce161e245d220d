// Package mcp implements the Model Context Protocol server, exposing
// read-only Tezos queries to LLMs. Every argument a client sends is
// validated before it reaches the node or indexer, and every failure is
// scrubbed before it is returned.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/sanitize"
	"github.com/jpl-au/tzmcp/internal/tezos"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Name is the server name advertised to clients.
const Name = "tezos"

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// DefaultNetwork is used when a tool call names no network.
const DefaultNetwork = "mainnet"

// Serve starts the MCP server over stdio.
//
// Design: Serve builds its own chain service rather than sharing the CLI's,
// so its process log goes to stderr. stdout is reserved for JSON-RPC.
func Serve(cfg *config.Config) error {
	logger := slog.New(sanitize.NewHandler(slog.NewTextHandler(os.Stderr, nil)))
	slog.SetDefault(logger)

	reg, err := tezos.NewRegistry(cfg)
	if err != nil {
		slog.Error("failed to build network registry", "error", err)
		return err
	}
	svc := chain.New(reg, chain.Limits{MaxLimit: cfg.MaxLimit(), MaxAmount: cfg.MaxAmount()}, logger)

	s := NewServer(extension.NewContext(svc, cfg))

	slog.Info("tezos MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer creates the MCP server with the built-in tools and resources
// plus any tools contributed by extensions.
func NewServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	h := &handlers{svc: extCtx.Service(), cfg: extCtx.Config()}
	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, extCtx)
	return s
}

// handlers provides MCP request handlers with access to the chain service.
type handlers struct {
	svc *chain.Service
	cfg *config.Config
}

// registerResources adds read-only URI access to the gateway's setup.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			NetworksURI,
			"Networks",
			mcp.WithResourceDescription("Supported networks, their endpoints and the input limits in force"),
			mcp.WithMIMEType("application/json"),
		),
		h.readNetworks,
	)
}

// registerTools exposes the chain operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	networkOpt := mcp.WithString("network", mcp.Description("Network: mainnet, shadownet or ghostnet (default: mainnet)"))

	s.AddTool(
		mcp.NewTool("tezos_get_balance",
			mcp.WithDescription("Get the XTZ balance of a Tezos address"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Address (tz1, tz2, tz3 or KT1)")),
			networkOpt,
		),
		h.getBalance,
	)

	s.AddTool(
		mcp.NewTool("tezos_get_contract_storage",
			mcp.WithDescription("Get the current storage of a smart contract as Micheline JSON"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Contract address (KT1)")),
			networkOpt,
		),
		h.getContractStorage,
	)

	s.AddTool(
		mcp.NewTool("tezos_get_operations",
			mcp.WithDescription("List recent transactions involving an address"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Address (tz1, tz2, tz3 or KT1)")),
			mcp.WithNumber("limit", mcp.Description("Number of operations to return, a whole number from 1 to the configured maximum (default: 10)")),
			networkOpt,
		),
		h.getOperations,
	)

	s.AddTool(
		mcp.NewTool("tezos_get_operation",
			mcp.WithDescription("Look up an operation group by hash"),
			mcp.WithString("hash", mcp.Required(), mcp.Description("Operation hash (o followed by 50 base58 characters)")),
			networkOpt,
		),
		h.getOperation,
	)

	s.AddTool(
		mcp.NewTool("tezos_get_block_info",
			mcp.WithDescription("Get block information for the head block or a given level"),
			mcp.WithNumber("level", mcp.Description("Block level, a whole number (default: head)")),
			networkOpt,
		),
		h.getBlockInfo,
	)

	s.AddTool(
		mcp.NewTool("tezos_get_network_info",
			mcp.WithDescription("Get protocol and consensus constants for a network"),
			networkOpt,
		),
		h.getNetworkInfo,
	)

	s.AddTool(
		mcp.NewTool("tezos_validate_address",
			mcp.WithDescription("Check whether a string is a well-formed Tezos address, without network access"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Address to check")),
		),
		h.validateAddress,
	)

	s.AddTool(
		mcp.NewTool("tezos_format_amount",
			mcp.WithDescription("Convert a mutez amount to XTZ, checking it against the amount limit"),
			mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount in mutez, a whole number")),
		),
		h.formatAmount,
	)

	s.AddTool(
		mcp.NewTool("tezos_guide",
			mcp.WithDescription("Get usage guidance for this server's tools"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'tools', 'validation', 'networks') or empty for index")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds tools contributed by extensions, binding each
// handler to the server's extension context.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
		}
	}
}
