package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newBasenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basename <path>...",
		Short: "Print the last component of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				a.out.Line(p[stringx.BaseName(p):])
			}
			return nil
		},
	}
}
