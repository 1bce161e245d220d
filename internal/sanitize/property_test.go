package sanitize

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// fragments are the shapes the passes care about, drawn in random order so
// boundaries between them get exercised.
var fragments = []string{
	" ", "\t", "/", "//", ":", "@", "\"", "'", "=", "(", ")", "[", "]", ",", ";", "…", "\\",
	"C:", "c:\\", "D:/", "https://", "http://", "user:pw@", "host", "etc", "passwd",
	"edsk", "spsk", "p2sk", "abandon", "ability", "ox",
	strings.Repeat("7Kq", 9), strings.Repeat("Zz2", 20), "é", "0", "_",
}

func fragmentText() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOfN(rapid.SampledFrom(fragments), 0, 120).Draw(t, "parts")
		return strings.Join(parts, "")
	})
}

func TestError_IdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := fragmentText().Draw(t, "text")
		once := Error(s)
		if twice := Error(once); twice != once {
			t.Fatalf("Error not idempotent\ninput: %q\nonce:  %q\ntwice: %q", s, once, twice)
		}
	})
}

func TestError_ArbitraryTextIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "text")
		once := Error(s)
		if twice := Error(once); twice != once {
			t.Fatalf("Error not idempotent\ninput: %q\nonce:  %q\ntwice: %q", s, once, twice)
		}
	})
}

func TestLog_IdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := fragmentText().Draw(t, "text")
		once := Log(s)
		if twice := Log(once); twice != once {
			t.Fatalf("Log not idempotent\ninput: %q\nonce:  %q\ntwice: %q", s, once, twice)
		}
	})
}

func TestLog_PrefixedSecretsNeverSurvive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.SampledFrom([]string{"edsk", "spsk", "p2sk"}).Draw(t, "prefix")
		n := rapid.IntRange(50, 120).Draw(t, "len")
		body := strings.Repeat("Zz2", n/3+1)[:n]
		got := Log("key " + prefix + body + " end")
		if got != "key "+prefix+"[REDACTED] end" {
			t.Fatalf("Log leaked key material: %q", got)
		}
	})
}
