// registry.go implements the extension registration system.
//
// Extensions self-register during init(), before main() runs. The root
// command and the MCP server both read the registry: the first for CLI
// commands, the second for MCP tools.
//
// Design: Duplicate names panic, following database/sql.Register.
// Registration order is kept so help output and tool listings are stable
// across runs.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension to the registry. Called from init() functions.
// A duplicate name is a programming error and panics.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
