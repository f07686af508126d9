package main

import (
	"os"

	"github.com/msto63/strcore/cmd/strx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
