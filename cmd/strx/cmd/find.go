package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		ignoreCase bool
		maxLen     int
	)

	cmd := &cobra.Command{
		Use:   "find <needle> <haystack>",
		Short: "Offset of needle in haystack, or -1",
		Long: `find prints the offset of the first occurrence of needle in haystack.
With --max only matches that end within the first max bytes count.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := stringx.Unbounded
			if maxLen >= 0 {
				limit = maxLen
			}

			var i int
			if ignoreCase {
				i = stringx.Stristr(args[1], args[0], limit)
			} else {
				i = stringx.Strnstr(args[1], args[0], limit)
			}
			a.out.Line(strconv.Itoa(i))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ASCII case-insensitive search")
	cmd.Flags().IntVarP(&maxLen, "max", "n", -1, "search only the first max bytes")
	return cmd
}
