// address.go implements Tezos account and contract identifier validation.
//
// Separated because identifiers are the most common untrusted parameter and
// the only one tagged with a family on success. Downstream code receives an
// Identifier rather than a string, so an unvalidated address cannot reach a
// URL by accident.
//
// Design: Grammars are anchored at both ends (\A...\z). The whole string
// must match; a valid address embedded in longer text is rejected.

package validate

import (
	"fmt"
	"regexp"
)

// Base58Class is the character class of the Bitcoin-style base-58 alphabet
// (no 0, O, I or l). Shared with the sanitize package's secret patterns.
const Base58Class = `[1-9A-HJ-NP-Za-km-z]`

// Kind identifies an identifier family by its 3-character prefix.
type Kind string

const (
	Ed25519Account   Kind = "tz1"
	Secp256k1Account Kind = "tz2"
	P256Account      Kind = "tz3"
	Contract         Kind = "KT1"
)

// String returns a descriptive name for the kind.
func (k Kind) String() string {
	switch k {
	case Ed25519Account:
		return "ed25519 account"
	case Secp256k1Account:
		return "secp256k1 account"
	case P256Account:
		return "p256 account"
	case Contract:
		return "contract"
	default:
		return "unknown"
	}
}

// Identifier is a validated account or contract address.
type Identifier struct {
	Raw  string
	Kind Kind
}

// String returns the raw address.
func (id Identifier) String() string {
	return id.Raw
}

// IsContract reports whether the identifier is an originated contract.
func (id Identifier) IsContract() bool {
	return id.Kind == Contract
}

type grammar struct {
	kind Kind
	expr *regexp.Regexp
}

// grammars are tried in this order. Prefixes are disjoint, so the order
// only affects how many expressions a rejected value is tested against.
var grammars = []grammar{
	{Ed25519Account, regexp.MustCompile(`\Atz1` + Base58Class + `{33}\z`)},
	{Secp256k1Account, regexp.MustCompile(`\Atz2` + Base58Class + `{33}\z`)},
	{P256Account, regexp.MustCompile(`\Atz3` + Base58Class + `{33}\z`)},
	{Contract, regexp.MustCompile(`\AKT1` + Base58Class + `{33}\z`)},
}

// echoLimit bounds how much of a rejected value is repeated in an error.
const echoLimit = 20

// Address validates a Tezos address and returns it tagged with its family.
//
// Validation rules:
//   - Empty input rejected
//   - Must be one of tz1, tz2, tz3 or KT1 followed by exactly 33 base-58
//     characters, with nothing before or after
func Address(raw string) (Identifier, error) {
	if raw == "" {
		return Identifier{}, newError("address", ErrInvalidAddress, "address must be a non-empty string")
	}
	for _, g := range grammars {
		if g.expr.MatchString(raw) {
			return Identifier{Raw: raw, Kind: g.kind}, nil
		}
	}
	return Identifier{}, newError("address", ErrInvalidAddress, fmt.Sprintf(
		"invalid tezos address format: must be a tz1, tz2, tz3 or KT1 address, got: %q",
		truncate(raw, echoLimit)))
}

// ContractAddress validates an address that must name an originated
// contract (KT1). Implicit accounts have no code or storage.
func ContractAddress(raw string) (Identifier, error) {
	id, err := Address(raw)
	if err != nil {
		return Identifier{}, err
	}
	if !id.IsContract() {
		return Identifier{}, newError("address", ErrInvalidAddress, fmt.Sprintf(
			"address must be a KT1 contract, got: %s", string(id.Kind)))
	}
	return id, nil
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
