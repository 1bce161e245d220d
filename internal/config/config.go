// Package config provides reading and writing of tzmcp configuration.
// Supports both global (~/.tzmcp/config.yaml) and local (.tzmcp/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// Endpoint resolution order for a network is: environment variable
// (TEZOS_<NETWORK>_NODE, TEZOS_<NETWORK>_INDEXER), then the config file,
// then the built-in public endpoint.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/tzmcp/internal/duration"
	"github.com/jpl-au/tzmcp/internal/validate"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.tzmcp/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .tzmcp/config.yaml
	ScopeLocal
)

// Dir is the name of the configuration directory.
const Dir = ".tzmcp"

// Network holds endpoint overrides for one Tezos network.
type Network struct {
	Node    string `yaml:"node,omitempty"`
	Indexer string `yaml:"indexer,omitempty"`
}

// Limits holds the upper bounds applied to caller-supplied numbers.
type Limits struct {
	MaxLimit  *int64 `yaml:"max_limit,omitempty"`
	MaxAmount *int64 `yaml:"max_amount,omitempty"`
}

// HTTP holds backend client options.
type HTTP struct {
	Timeout string `yaml:"timeout,omitempty"`
}

// Default values applied when not configured.
const (
	DefaultTimeout = 30 * time.Second
)

// Validation bounds for configuration values.
const (
	MinMaxLimit  = 1
	MaxMaxLimit  = validate.DefaultMaxLimit
	MinMaxAmount = 0
	MaxMaxAmount = validate.DefaultMaxAmount
	MinTimeout   = time.Second
	MaxTimeout   = 5 * time.Minute
)

// Built-in public endpoints.
var (
	defaultNodes = map[validate.Net]string{
		validate.Mainnet:   "https://mainnet.api.tez.ie",
		validate.Shadownet: "https://rpc.shadownet.teztnets.com",
		validate.Ghostnet:  "https://rpc.ghostnet.teztnets.com",
	}
	defaultIndexers = map[validate.Net]string{
		validate.Mainnet:   "https://api.tzkt.io",
		validate.Shadownet: "https://api.shadownet.tzkt.io",
		validate.Ghostnet:  "https://api.ghostnet.tzkt.io",
	}
)

// Config contains configuration for tzmcp.
type Config struct {
	Networks map[string]Network `yaml:"networks,omitempty"`
	Limits   Limits             `yaml:"limits,omitempty"`
	HTTP     HTTP               `yaml:"http,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	for name, n := range c.Networks {
		if _, err := validate.Network(name); err != nil {
			return fmt.Errorf("%w: networks.%s: %w", ErrInvalidValue, name, err)
		}
		if err := checkURL("networks."+name+".node", n.Node); err != nil {
			return err
		}
		if err := checkURL("networks."+name+".indexer", n.Indexer); err != nil {
			return err
		}
	}
	if c.Limits.MaxLimit != nil {
		v := *c.Limits.MaxLimit
		if v < MinMaxLimit || v > MaxMaxLimit {
			return fmt.Errorf("%w: max_limit must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLimit, MaxMaxLimit, v)
		}
	}
	if c.Limits.MaxAmount != nil {
		v := *c.Limits.MaxAmount
		if v < MinMaxAmount || v > MaxMaxAmount {
			return fmt.Errorf("%w: max_amount must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxAmount, MaxMaxAmount, v)
		}
	}
	if c.HTTP.Timeout != "" {
		if _, err := parseTimeout(c.HTTP.Timeout); err != nil {
			return err
		}
	}
	return nil
}

// checkURL accepts an empty value (unset) or an absolute http(s) URL.
func checkURL(key, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http or https URL", ErrInvalidValue, key)
	}
	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: http.timeout: %w", ErrInvalidValue, err)
	}
	if d < MinTimeout || d > MaxTimeout {
		return 0, fmt.Errorf("%w: http.timeout must be between %s and %s, got %s",
			ErrInvalidValue, duration.Format(MinTimeout), duration.Format(MaxTimeout), s)
	}
	return d, nil
}

// MaxLimit returns the upper bound for result counts (defaults to 100).
func (c *Config) MaxLimit() int64 {
	if c.Limits.MaxLimit == nil {
		return validate.DefaultMaxLimit
	}
	return *c.Limits.MaxLimit
}

// MaxAmount returns the upper bound for mutez amounts (defaults to 10^12).
func (c *Config) MaxAmount() int64 {
	if c.Limits.MaxAmount == nil {
		return validate.DefaultMaxAmount
	}
	return *c.Limits.MaxAmount
}

// Timeout returns the backend request timeout (defaults to 30s).
func (c *Config) Timeout() time.Duration {
	if c.HTTP.Timeout == "" {
		return DefaultTimeout
	}
	d, err := parseTimeout(c.HTTP.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Node returns the RPC node URL for a network.
func (c *Config) Node(n validate.Net) string {
	if v := os.Getenv(EnvKey(n, "node")); v != "" {
		return v
	}
	if v := c.Networks[n.String()].Node; v != "" {
		return v
	}
	return defaultNodes[n]
}

// Indexer returns the TzKT indexer URL for a network.
func (c *Config) Indexer(n validate.Net) string {
	if v := os.Getenv(EnvKey(n, "indexer")); v != "" {
		return v
	}
	if v := c.Networks[n.String()].Indexer; v != "" {
		return v
	}
	return defaultIndexers[n]
}

// EnvKey returns the environment variable that overrides an endpoint,
// e.g. TEZOS_GHOSTNET_NODE.
func EnvKey(n validate.Net, endpoint string) string {
	return "TEZOS_" + strings.ToUpper(n.String()) + "_" + strings.ToUpper(endpoint)
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.tzmcp/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
