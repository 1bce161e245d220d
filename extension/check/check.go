// Package check provides the check extension for tzmcp.
// It registers "check", which runs one validator over a value without any
// network access. Useful for testing what a caller's input will do before
// wiring an agent to the server.
package check

import (
	"errors"
	"fmt"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	svc *chain.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Init stores the shared chain service for its limits.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the check command and its subcommands.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Validate a value without network access",
		Long: `Run one validator over a value and print the normalised result or the rejection.

  tzmcp check address tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb
  tzmcp check network " Ghostnet "
  tzmcp check limit 2.5
  tzmcp check amount 1500000

Numbers are read as JSON: 10 is an integer, 2.5 and "10" are not.`,
	}
	for _, v := range validators {
		c.AddCommand(e.newCheckCmd(v))
	}
	return []*cobra.Command{c}
}

// MCPTools returns nil - tezos_validate_address covers the MCP side.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// validator is one "check" subcommand.
type validator struct {
	name  string
	short string
	run   func(s *chain.Service, arg string) (string, error)
}

var validators = []validator{
	{"address", "Check a tz1/tz2/tz3/KT1 address", func(s *chain.Service, arg string) (string, error) {
		return s.CheckAddress(arg)
	}},
	{"contract", "Check a KT1 contract address", func(_ *chain.Service, arg string) (string, error) {
		id, err := validate.ContractAddress(arg)
		if err != nil {
			return "", err
		}
		return "valid contract: " + id.String(), nil
	}},
	{"network", "Check a network name", func(_ *chain.Service, arg string) (string, error) {
		n, err := validate.Network(arg)
		if err != nil {
			return "", err
		}
		return "valid network: " + n.String(), nil
	}},
	{"limit", "Check an operation list limit", func(s *chain.Service, arg string) (string, error) {
		n, err := validate.Limit(extension.Number(arg), s.Limits().MaxLimit)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("valid limit: %d", n), nil
	}},
	{"amount", "Check a mutez amount", func(s *chain.Service, arg string) (string, error) {
		return s.FormatAmount(extension.Number(arg))
	}},
	{"level", "Check a block level", func(_ *chain.Service, arg string) (string, error) {
		n, err := validate.Level(extension.Number(arg))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("valid level: %d", n), nil
	}},
	{"ophash", "Check an operation hash", func(_ *chain.Service, arg string) (string, error) {
		h, err := validate.OperationHash(arg)
		if err != nil {
			return "", err
		}
		return "valid operation hash: " + h, nil
	}},
}

func (e *Extension) newCheckCmd(v validator) *cobra.Command {
	return &cobra.Command{
		Use:   v.name + " <value>",
		Short: v.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := v.run(e.svc, args[0])
			ev := log.Event("check:"+v.name, "check")
			if v.name != "amount" {
				ev.Target(args[0])
			}
			ev.Write(err)
			if err != nil {
				return cmd.PrintJSONError(errors.New(chain.Reply(err)))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(map[string]any{"valid": true, "result": text})
			}
			fmt.Fprintln(cmd.Out(), text)
			return nil
		},
	}
}
