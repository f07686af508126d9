package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newToBoolCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tobool <value>...",
		Short: "Report whether each value is true, yes, on or 1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				a.out.Pair(arg, strconv.FormatBool(stringx.ToBool(arg)))
			}
			return nil
		},
	}
}
