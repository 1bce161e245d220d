/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, builds the network registry and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before configuration is read. The chain service is
// created once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/tezos"
)

// offlineCommands lists commands that bypass chain service initialisation.
// Built from the bootstrap commands plus extension-declared offline commands.
var offlineCommands map[string]bool

// buildOfflineCommands creates the set of commands that skip initialisation.
//
// help and completion are cobra's own. guide needs nothing loaded, and
// config loads the file itself so it can report what is wrong with it.
func buildOfflineCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
		"guide":      true,
		"config":     true,
	}

	for _, ext := range extension.All() {
		if o, ok := ext.(extension.Offline); ok {
			for _, name := range o.OfflineCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions builds the chain service and injects it into extensions.
//
// The CLI's chain service discards its process log: failures are already
// printed to the user and recorded in the audit log.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		reg, err := tezos.NewRegistry(cfg)
		if err != nil {
			initErr = fmt.Errorf("building network registry: %w", err)
			return
		}

		limits := chain.Limits{MaxLimit: cfg.MaxLimit(), MaxAmount: cfg.MaxAmount()}
		extContext = extension.NewContext(chain.New(reg, limits, nil), cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		offlineCommands = buildOfflineCommands()
	})
}
