package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	scerror "github.com/msto63/strcore/foundation/core/error"
	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newMatchCmd(a *app) *cobra.Command {
	var words []string

	cmd := &cobra.Command{
		Use:     "match --word <word>... <text>",
		Short:   "Offset of the first whole-identifier match",
		Example: `  strx match -w max -w min "x = max_len + max(a, b)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(words) == 0 {
				return scerror.New("at least one --word is required").
					WithCode(scerror.CodeInvalidInput).
					WithOperation("strx.match")
			}
			i := stringx.FindAnyIdentifierMatch(args[0], words...)
			a.out.Line(strconv.Itoa(i))
			if i >= 0 {
				a.out.Note(args[0][i:])
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&words, "word", "w", nil, "identifier to look for (repeatable)")
	return cmd
}
