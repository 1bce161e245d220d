// commands.go defines the query commands.
//
// Each command passes its arguments through unchanged: the chain service
// validates them exactly as it validates MCP tool arguments.

package chain

import (
	"context"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	svcchain "github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balance of an address",
		Long: `Show the XTZ balance of a tz1, tz2, tz3 or KT1 address.

  tzmcp balance tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb
  tzmcp balance KT1PWx2mnDueood7fEmfbBDKx1D9BAnnXitn -n ghostnet`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ev := log.Event("chain:balance", "read").Network(cmd.Network()).Target(args[0])
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.Balance(ctx, args[0], cmd.Network())
			})
		},
	}
}

func (e *Extension) newStorageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "storage <contract>",
		Short: "Show the storage of a contract",
		Long: `Show the current storage of a KT1 contract as Micheline JSON.

  tzmcp storage KT1PWx2mnDueood7fEmfbBDKx1D9BAnnXitn`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ev := log.Event("chain:storage", "read").Network(cmd.Network()).Target(args[0])
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.ContractStorage(ctx, args[0], cmd.Network())
			})
		},
	}
}

func (e *Extension) newOperationsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "operations <address>",
		Short: "List recent transactions of an address",
		Long: `List recent transactions sent or received by an address, newest first.

  tzmcp operations tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb
  tzmcp operations tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb --limit 25`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var limit any
			if c.Flags().Changed(extension.FlagLimit) {
				raw, _ := c.Flags().GetString(extension.FlagLimit)
				limit = extension.Number(raw)
			}
			ev := log.Event("chain:operations", "list").Network(cmd.Network()).Target(args[0])
			if limit != nil {
				ev.Detail("limit", limit)
			}
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.Operations(ctx, args[0], limit, cmd.Network())
			})
		},
	}
	c.Flags().StringP(extension.FlagLimit, "l", "", "Number of operations (default 10)")
	return c
}

func (e *Extension) newOperationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operation <hash>",
		Short: "Look up an operation group",
		Long: `Look up an operation group by hash.

  tzmcp operation ooXYZ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ev := log.Event("chain:operation", "read").Network(cmd.Network()).Target(args[0])
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.Operation(ctx, args[0], cmd.Network())
			})
		},
	}
}

func (e *Extension) newBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block [level]",
		Short: "Show block information",
		Long: `Show the head block, or the block at a level.

  tzmcp block
  tzmcp block 5000000 -n mainnet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var level any
			target := "head"
			if len(args) == 1 {
				level = extension.Number(args[0])
				target = args[0]
			}
			ev := log.Event("chain:block", "read").Network(cmd.Network()).Target(target)
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.BlockInfo(ctx, level, cmd.Network())
			})
		},
	}
}

func (e *Extension) newNetworkInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "network-info",
		Short: "Show protocol constants",
		Long: `Show the current protocol and its main constants.

  tzmcp network-info -n shadownet`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ev := log.Event("chain:network-info", "read").Network(cmd.Network())
			return e.query(c, ev, func(ctx context.Context, s *svcchain.Service) (string, error) {
				return s.NetworkInfo(ctx, cmd.Network())
			})
		},
	}
}
