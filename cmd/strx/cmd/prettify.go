package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	scerror "github.com/msto63/strcore/foundation/core/error"
	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newPrettifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prettify <size>...",
		Short:   "Render byte counts with IEC units",
		Example: "  strx prettify 1536 82854982 \"10 MB\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf [32]byte
			for _, arg := range args {
				size, err := humanize.ParseBytes(arg)
				if err != nil {
					return scerror.Wrap(err, "invalid size").
						WithCode(scerror.CodeInvalidInput).
						WithOperation("strx.prettify").
						WithDetail("input", arg)
				}
				n := stringx.Prettify(buf[:], size)
				a.out.Pair(arg, string(buf[:n]))
			}
			return nil
		},
	}
}
