package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/utils/stringx"
	"github.com/msto63/strcore/pkg/core/logging"
)

func newEolCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eol [file]",
		Short: "Convert CRLF and CR line endings to LF",
		Long: `eol reads a file, or stdin, and writes it with every "\r\n" and lone
"\r" replaced by "\n". UTF-16 input with a byte order mark is decoded to
UTF-8 first. Output stops at the first NUL byte.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			data, err := a.readInput(cmd, name)
			if err != nil {
				return err
			}

			dst := make([]byte, len(data)+1)
			n := stringx.EolLF(dst, data)
			a.logger.Debug("line endings normalized", logging.KV("in", len(data), "out", n))
			return a.out.Raw(dst[:n])
		},
	}
}
