package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "networks.mainnet.node: https://mainnet.api.tez.ie")
		env.contains(out, "networks.ghostnet.indexer: https://api.ghostnet.tzkt.io")
		env.contains(out, "limits.max_limit: 100")
		env.contains(out, "http.timeout: 30s")
	})

	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "limits.max_limit", "25")

		out := env.run("config", "limits.max_limit")
		env.equals(out, "25")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "networks.ghostnet.node", "http://file.example:8732")
		env.setenv("TEZOS_GHOSTNET_NODE", "http://env.example:8732")

		out := env.run("config", "networks.ghostnet.node")
		env.equals(out, "http://env.example:8732")
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "http.timeout", "-o", "json")
		env.contains(out, `"http.timeout": "30s"`)
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"max limit", "limits.max_limit", "50"},
		{"max amount", "limits.max_amount", "5000000"},
		{"timeout", "http.timeout", "1500ms"},
		{"node", "networks.shadownet.node", "https://node.example"},
		{"indexer", "networks.mainnet.indexer", "http://localhost:5000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("config", tc.key, tc.value)
			env.contains(out, "(global)")

			out = env.run("config", tc.key)
			env.equals(out, tc.value)
		})
	}
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "--local", "limits.max_limit", "10")
	env.contains(out, "(local)")

	_, err := os.Stat(filepath.Join(env.dir, ".tzmcp", "config.yaml"))
	require.NoError(t, err)

	// The local file now exists, so plain reads use it.
	out = env.run("config", "limits.max_limit")
	env.equals(out, "10")
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "author.name", "value"},
		{"unknown network", "networks.localnet.node", "http://localhost:8732"},
		{"relative url", "networks.mainnet.node", "node.example"},
		{"ftp url", "networks.mainnet.node", "ftp://node.example"},
		{"limit too large", "limits.max_limit", "1000"},
		{"limit zero", "limits.max_limit", "0"},
		{"timeout unit", "http.timeout", "1h"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.runErr("config", tc.key, tc.value)
			assert.Error(t, err)
		})
	}
}

func TestConfig_BrokenFile(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.home, ".tzmcp")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("limits: [\n"), 0o644))

	out, err := env.runErr("config")
	assert.Error(t, err)
	env.contains(out, "malformed config file")

	// Offline commands are unaffected.
	out = env.run("version")
	env.contains(out, "Build Tag:")
}
