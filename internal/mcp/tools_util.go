// tools_util.go provides helper functions for MCP tool argument extraction.
//
// Separated to centralise how raw arguments leave MCP's generic argument
// map. Nothing here coerces: a value of the wrong type is handed on as-is
// so the validator rejects it with a message naming the type it got.
//
// Design: The one conversion is for numbers, shared with the CLI through
// extension.Integral: a whole-number float64 goes back to the integer
// literal the client sent.

package mcp

import (
	"encoding/json"

	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// arguments returns the request's argument map, or nil when the client sent
// something other than an object.
func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

// stringArg returns a string argument. A missing or null argument yields
// def; any other non-string is a validation error.
func stringArg(req mcp.CallToolRequest, name, def string) (string, error) {
	v, ok := arguments(req)[name]
	if !ok || v == nil {
		return def, nil
	}
	return validate.Text(name, v)
}

// numberArg returns a numeric argument ready for integer validation, or nil
// when it is missing or null.
func numberArg(req mcp.CallToolRequest, name string) any {
	v, ok := arguments(req)[name]
	if !ok || v == nil {
		return nil
	}
	return extension.Integral(v)
}

// jsonResult serialises v as indented JSON and wraps it in a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
