package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/strcore/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.out.Title("strx " + version.CLI)
			a.out.Pair("module", version.Module)
			for _, name := range version.Components() {
				a.out.Pair(name, version.ComponentVersion(name))
			}
			a.out.Pair("commit", version.Commit)
			a.out.Pair("go", runtime.Version())
			a.out.Pair("platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
			a.out.Note("config: " + configSource(a))
			return nil
		},
	}
}

func configSource(a *app) string {
	if src := a.cfg.Source(); src != "" {
		return src
	}
	return "defaults"
}
