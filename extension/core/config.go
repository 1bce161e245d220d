// config.go implements the "tzmcp config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.tzmcp/config.yaml) takes precedence over global (~/.tzmcp/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.
// Values are validated on set, so a bad URL or an out-of-range limit never
// reaches the file.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  tzmcp config                                   # show config
  tzmcp config limits.max_limit                  # show one value
  tzmcp config limits.max_limit 50               # set a value
  tzmcp config networks.ghostnet.node http://localhost:8732

Configuration locations:
  Global: ~/.tzmcp/config.yaml
  Local:  .tzmcp/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.

TEZOS_<NETWORK>_NODE and TEZOS_<NETWORK>_INDEXER override the endpoints
shown here when set.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.tzmcp/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		// Endpoint URLs may embed credentials, so the value is not logged.
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
