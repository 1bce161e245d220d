// log.go implements the log text pipeline.
//
// Design: Credentialed URLs are replaced whole, as in error text. The key
// prefix is kept ("edsk[REDACTED]") so an audit reader can tell which key
// type leaked. Mnemonic detection only runs on text with at least 12
// fields; the 12-word threshold matches the shortest standard seed phrase
// and must stay fixed.

package sanitize

import (
	"regexp"
	"strings"

	"github.com/jpl-au/tzmcp/internal/validate"
)

// MnemonicWords is the minimum number of consecutive words treated as a
// seed phrase.
const MnemonicWords = 12

var (
	// Secret keys: ed25519 (edsk), secp256k1 (spsk), p256 (p2sk).
	secretKey = Rule{
		Name:        "secret-key",
		Expr:        regexp.MustCompile(`(^|` + notBase58 + `)(edsk|spsk|p2sk)` + validate.Base58Class + `{50,}`),
		Replacement: "${1}${2}[REDACTED]",
	}

	mnemonic = Rule{
		Name:        "mnemonic",
		Expr:        regexp.MustCompile(`(?i)\b[a-z]{3,}(?:\s+[a-z]{3,}){11,}\b`),
		Replacement: "[MNEMONIC]",
	}
)

var logPipeline = NewPipeline("log",
	credentialURL.Pass(),
	secretKey.Pass(),
	Pass{Name: mnemonic.Name, Apply: func(s string) string {
		if len(strings.Fields(s)) < MnemonicWords {
			return s
		}
		return mnemonic.Expr.ReplaceAllString(s, mnemonic.Replacement)
	}},
)

// LogPipeline returns the log pipeline.
func LogPipeline() Pipeline { return logPipeline }

// Log returns text safe to write to a durable log.
func Log(text string) string {
	return logPipeline.Run(text)
}
