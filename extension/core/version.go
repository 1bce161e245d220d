// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, sanitizer revision, Go version, and platform.`,
		Run: func(_ *cobra.Command, _ []string) {
			info := version.Get()
			if cmd.JSON() {
				_ = cmd.PrintJSON(info)
				return
			}
			fmt.Fprint(cmd.Out(), info.String())
		},
	}
}
