package validate

import (
	"fmt"
	"regexp"
)

var operationHash = regexp.MustCompile(`\Ao` + Base58Class + `{50}\z`)

// OperationHash validates an operation hash: "o" followed by exactly 50
// base-58 characters.
func OperationHash(raw string) (string, error) {
	if raw == "" {
		return "", newError("operation hash", ErrInvalidOperationHash, "operation hash must be a non-empty string")
	}
	if !operationHash.MatchString(raw) {
		return "", newError("operation hash", ErrInvalidOperationHash, fmt.Sprintf(
			"invalid operation hash format: must be 'o' followed by 50 base58 characters, got: %q",
			truncate(raw, echoLimit)))
	}
	return raw, nil
}
