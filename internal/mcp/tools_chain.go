// tools_chain.go implements the MCP tools that query the Tezos backend.
//
// Each handler pulls its raw arguments, hands them to the chain service
// (which validates before any I/O) and writes one audit entry. Failures are
// returned as tool errors, never as protocol errors, so the client sees the
// "validation error:" or "error:" reply text.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// reply writes the audit entry and converts an operation outcome into a
// tool result.
func (h *handlers) reply(ev *log.Builder, op, text string, err error) (*mcp.CallToolResult, error) {
	ev.Write(err)
	if err != nil {
		return mcp.NewToolResultError(h.svc.Fail(op, err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// addressArgs extracts the address and network arguments shared by most
// tools.
func addressArgs(req mcp.CallToolRequest, ev *log.Builder) (address, network string, err error) {
	if address, err = stringArg(req, "address", ""); err != nil {
		return "", "", err
	}
	ev.Target(address)
	if network, err = stringArg(req, "network", DefaultNetwork); err != nil {
		return "", "", err
	}
	ev.Network(network)
	return address, network, nil
}

// getBalance handles tezos_get_balance tool calls.
func (h *handlers) getBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_balance", "read")
	address, network, err := addressArgs(req, ev)
	if err != nil {
		return h.reply(ev, "balance", "", err)
	}
	text, err := h.svc.Balance(ctx, address, network)
	return h.reply(ev, "balance", text, err)
}

// getContractStorage handles tezos_get_contract_storage tool calls.
func (h *handlers) getContractStorage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_contract_storage", "read")
	address, network, err := addressArgs(req, ev)
	if err != nil {
		return h.reply(ev, "contract storage", "", err)
	}
	text, err := h.svc.ContractStorage(ctx, address, network)
	return h.reply(ev, "contract storage", text, err)
}

// getOperations handles tezos_get_operations tool calls.
func (h *handlers) getOperations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_operations", "list")
	address, network, err := addressArgs(req, ev)
	if err != nil {
		return h.reply(ev, "operations", "", err)
	}
	limit := numberArg(req, "limit")
	if limit != nil {
		ev.Detail("limit", fmt.Sprint(limit))
	}
	text, err := h.svc.Operations(ctx, address, limit, network)
	return h.reply(ev, "operations", text, err)
}

// getOperation handles tezos_get_operation tool calls.
func (h *handlers) getOperation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_operation", "read")
	hash, err := stringArg(req, "hash", "")
	if err != nil {
		return h.reply(ev, "operation", "", err)
	}
	ev.Target(hash)
	network, err := stringArg(req, "network", DefaultNetwork)
	if err != nil {
		return h.reply(ev, "operation", "", err)
	}
	ev.Network(network)
	text, err := h.svc.Operation(ctx, hash, network)
	return h.reply(ev, "operation", text, err)
}

// getBlockInfo handles tezos_get_block_info tool calls.
func (h *handlers) getBlockInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_block_info", "read")
	level := numberArg(req, "level")
	if level == nil {
		ev.Target("head")
	} else {
		ev.Target(fmt.Sprint(level))
	}
	network, err := stringArg(req, "network", DefaultNetwork)
	if err != nil {
		return h.reply(ev, "block info", "", err)
	}
	ev.Network(network)
	text, err := h.svc.BlockInfo(ctx, level, network)
	return h.reply(ev, "block info", text, err)
}

// getNetworkInfo handles tezos_get_network_info tool calls.
func (h *handlers) getNetworkInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_get_network_info", "read")
	network, err := stringArg(req, "network", DefaultNetwork)
	if err != nil {
		return h.reply(ev, "network info", "", err)
	}
	ev.Network(network)
	text, err := h.svc.NetworkInfo(ctx, network)
	return h.reply(ev, "network info", text, err)
}

// validateAddress handles tezos_validate_address tool calls.
func (h *handlers) validateAddress(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_validate_address", "check")
	address, err := stringArg(req, "address", "")
	if err != nil {
		return h.reply(ev, "validate address", "", err)
	}
	ev.Target(address)
	text, err := h.svc.CheckAddress(address)
	return h.reply(ev, "validate address", text, err)
}

// formatAmount handles tezos_format_amount tool calls. The amount is not
// recorded in the audit entry.
func (h *handlers) formatAmount(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ev := log.Event("mcp:tezos_format_amount", "check")
	text, err := h.svc.FormatAmount(numberArg(req, "amount"))
	return h.reply(ev, "format amount", text, err)
}
