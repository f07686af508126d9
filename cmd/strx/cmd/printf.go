package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newPrintfCmd(a *app) *cobra.Command {
	var newline bool

	cmd := &cobra.Command{
		Use:   "printf <format> [arg...]",
		Short: "Format arguments into an allocator-backed string",
		Long: `printf formats the arguments with Go fmt verbs. Arguments are passed
as strings, so use %s, %q or %v.`,
		Example: `  strx printf "%s=%q" key "a value"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fargs := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				fargs = append(fargs, arg)
			}

			s := stringx.NewString(a.alloc)
			defer s.Release()

			if err := stringx.StringPrintfVargs(s, args[0], fargs); err != nil {
				return err
			}
			if newline {
				if err := s.AppendString("\n"); err != nil {
					return err
				}
			}
			return a.out.Raw(s.Bytes())
		},
	}

	cmd.Flags().BoolVarP(&newline, "newline", "l", true, "terminate output with a newline")
	return cmd
}
