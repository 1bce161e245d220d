// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> chain service -> HTTP client -> audit log.
//
// Validators and the sanitizer have their own unit tests; these tests check
// that the binary wires them together, so a chain query hits a local
// httptest backend through the TEZOS_<NETWORK>_NODE overrides and every run
// gets its own HOME so config and audit log writes stay in a temp dir.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the tzmcp binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "tzmcp-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "tzmcp"
		if os.PathSeparator == '\\' {
			binaryName = "tzmcp.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newTestEnv creates a temporary working directory and HOME for one test.
//
// Nothing is initialised: tzmcp needs no store, and config is only written
// when a test runs "tzmcp config <key> <value>".
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	return &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: binary}
}

// setenv adds an environment variable for every later run.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// command builds an exec.Cmd isolated from the caller's HOME and Tezos
// environment.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "TEZOS_") || strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "USERPROFILE=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "HOME="+e.home, "USERPROFILE="+e.home)
	cmd.Env = append(env, e.env...)
	return cmd
}

// run executes tzmcp with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("tzmcp %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes tzmcp and returns stdout and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runStdin executes tzmcp with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("tzmcp %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes tzmcp with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
