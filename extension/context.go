// context.go defines the Context interface for extension access to tzmcp
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions: they can
// reach the chain service and configuration without building their own.
//
// Design: Context uses an interface to enable testing with stub
// implementations. Extensions receive Context during Init(), not at
// construction, because extensions register before configuration is
// loaded.

package extension

import (
	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/config"
)

// Context provides extensions controlled access to tzmcp internals.
type Context interface {
	// Service returns the chain service. Every operation on it validates
	// its arguments before any network access.
	Service() *chain.Service

	// Config returns the loaded configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc *chain.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc *chain.Service, cfg *config.Config) Context {
	return &extContext{svc: svc, cfg: cfg}
}

// Service returns the chain service.
func (c *extContext) Service() *chain.Service {
	return c.svc
}

// Config returns the loaded configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
