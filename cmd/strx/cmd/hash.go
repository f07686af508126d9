package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	scerror "github.com/msto63/strcore/foundation/core/error"
	"github.com/msto63/strcore/foundation/utils/hashx"
	"github.com/msto63/strcore/foundation/utils/stringx"
)

func newHashCmd(a *app) *cobra.Command {
	var (
		file string
		seed uint32
	)

	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the MurmurHash2A of each argument or of a file",
		Example: `  strx hash hello world
  strx hash --file notes.txt
  echo -n test | strx hash --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return scerror.New("hash needs text arguments or --file").
					WithCode(scerror.CodeInvalidInput).
					WithOperation("strx.hash")
			}

			if file != "" {
				data, err := a.readInput(cmd, file)
				if err != nil {
					return err
				}
				h := hashx.NewMurmur2A(seed)
				h.Write(data)
				a.out.Pair(fmt.Sprintf("%08x", h.Sum32()), file)
			}

			for _, arg := range args {
				var sum uint32
				if seed == 0 {
					sum = stringx.HashMurmur2AString(arg)
				} else {
					sum = hashx.Sum32Seed([]byte(arg), seed)
				}
				a.out.Pair(fmt.Sprintf("%08x", sum), arg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a file (- for stdin)")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "hash seed")
	return cmd
}
