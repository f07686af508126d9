package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
	"github.com/msto63/strcore/pkg/core/logging"
)

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <from> <to> [file]",
		Short: "Replace every occurrence of from with to",
		Long: `replace reads a file, or stdin, into a string owned by the configured
allocator and writes it with every non-overlapping occurrence of from
replaced by to. An empty from leaves the input unchanged.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 3 {
				name = args[2]
			}
			data, err := a.readInput(cmd, name)
			if err != nil {
				return err
			}

			src, err := stringx.NewStringFrom(a.alloc, data)
			if err != nil {
				return err
			}
			defer src.Release()

			out, err := stringx.ReplaceAllString(src, args[0], args[1])
			if err != nil {
				return err
			}
			defer out.Release()

			a.logger.Debug("replaced", logging.KV("from", args[0], "to", args[1], "in", src.Len(), "out", out.Len()))
			return a.out.Raw(out.Bytes())
		},
	}
}
