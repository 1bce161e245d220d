// error.go implements the caller-facing error text pipeline.
//
// Separated from log.go because the two policies are independent: error
// text is shown to an untrusted caller, so it loses paths and credentials
// and is bounded in length, while log text keeps its full length.
//
// Design: Pass order is paths (drive letters, file: URLs, POSIX), credentialed
// URLs, long secrets, truncate.
// Path and URL shapes are structurally distinct and are matched before the
// generic long-secret rule. Every pass is idempotent and no pass can create
// input for an earlier one, so Error(Error(s)) == Error(s).

package sanitize

import (
	"regexp"
	"unicode/utf8"

	"github.com/jpl-au/tzmcp/internal/validate"
)

// MaxErrorLength is the rune limit for caller-facing error text, excluding
// the truncation marker.
const MaxErrorLength = 200

// TruncationMarker is appended when error text is cut. It is a single
// rune that the path pass does not treat as a path character, so a cut
// that lands just after a "/" cannot turn into a path on a second pass.
const TruncationMarker = "…"

var (
	// Drive-letter paths. The letter must not follow an alphanumeric, so
	// "https:/" is not read as drive "s".
	windowsPath = Rule{
		Name:        "windows-path",
		Expr:        regexp.MustCompile(`(^|[^A-Za-z0-9])[A-Za-z]:[\\/][^\s"'<>]*`),
		Replacement: "${1}[PATH]",
	}

	// file: URLs are local paths whatever the number of slashes.
	fileURL = Rule{
		Name:        "file-url",
		Expr:        regexp.MustCompile(`(^|[^A-Za-z0-9])(?i:file):/+[^\s"'<>:;,|{}()\[\]…]*`),
		Replacement: "${1}[PATH]",
	}

	// Absolute POSIX paths. The slash must start the text or follow a
	// separator, which excludes "and/or". After a colon the slash must not
	// be doubled, which excludes the "//" of a URL but not "dir:/home".
	posixPath = Rule{
		Name: "posix-path",
		Expr: regexp.MustCompile(`(^|[\s=(\[,;"'` + "`" + `<>|{])/` + pathChars + `+` +
			`|(:)/[^/\s"'<>:;,|{}()\[\]…]` + pathChars + `*`),
		Replacement: "${1}${2}[PATH]",
	}

	credentialURL = Rule{
		Name:        "credential-url",
		Expr:        regexp.MustCompile(`(?i:https?)://[^\s:/@]+:[^\s@]+@\S*`),
		Replacement: "https://[REDACTED]",
	}

	// No trailing boundary: a truncation cut inside a run must not leave a
	// match that only appears on a second pass.
	longSecret = Rule{
		Name:        "long-secret",
		Expr:        regexp.MustCompile(`(^|` + notBase58 + `)` + validate.Base58Class + `{50,}`),
		Replacement: "${1}[REDACTED]",
	}
)

// pathChars is the class of characters a path body runs over.
const pathChars = `[^\s"'<>:;,|{}()\[\]…]`

// notBase58 matches one character outside the base-58 alphabet. It stands
// in for a word boundary, which "_", "0", "O", "I" and "l" would defeat.
const notBase58 = `[^1-9A-HJ-NP-Za-km-z]`

var errorPipeline = NewPipeline("error",
	windowsPath.Pass(),
	fileURL.Pass(),
	posixPath.Pass(),
	credentialURL.Pass(),
	longSecret.Pass(),
	Pass{Name: "truncate", Apply: truncate},
)

// ErrorPipeline returns the caller-facing pipeline.
func ErrorPipeline() Pipeline { return errorPipeline }

// Error returns text safe to show an MCP caller.
func Error(text string) string {
	return errorPipeline.Run(text)
}

// Err sanitises an error's text. A nil error yields "".
func Err(err error) string {
	if err == nil {
		return ""
	}
	return Error(err.Error())
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxErrorLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxErrorLength {
			return s[:i] + TruncationMarker
		}
		n++
	}
	return s
}
