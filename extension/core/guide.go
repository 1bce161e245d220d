// guide.go implements the "tzmcp guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package, so the
// same pages are available to the CLI and to MCP clients through the
// tezos_guide tool.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/guide"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the tzmcp usage guide",
		Long: `Outputs the tzmcp guide for LLMs and humans.

  tzmcp guide             # main guide
  tzmcp guide tools       # MCP tools
  tzmcp guide validation  # accepted inputs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			printMarkdown(content)
			return nil
		},
	}
}
