// Package validate provides input validation for values supplied by MCP
// callers before they reach the Tezos node or indexer.
//
// This package is the boundary between untrusted input (usually an LLM
// agent) and anything that performs I/O. Each validation function returns
// the normalised value on success or a *Error on failure.
//
// # Design Philosophy
//
// Validation is reject-by-default. Identifiers must match one of a closed
// set of grammars exactly, network names must be on a fixed whitelist, and
// numeric parameters must already be integers. Nothing is coerced, clamped
// or padded: a value that is almost right is still wrong.
//
// # Validation Functions
//
// Address validates tz1/tz2/tz3/KT1 identifiers and tags them with a Kind.
// Network validates and normalises a network name.
// BoundedInteger, Limit, Amount and Level validate integer parameters.
// OperationHash validates operation hashes.
// Text checks that a raw argument is a string at all.
//
// # Error Handling
//
// Every failure is a *Error wrapping one of the sentinel errors defined in
// errors.go. Use errors.Is for the failure category and IsValidation to
// tell input problems apart from backend failures:
//
//	if validate.IsValidation(err) {
//	    // caller must fix the input; retrying will not help
//	}
//
// All functions are pure and safe for concurrent use.
package validate
