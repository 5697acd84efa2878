package main

import (
	"os"

	"github.com/avdva/split/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		cli.NewLogger(os.Stderr, false).Error("splitdemo failed", "err", err)
		os.Exit(cli.GetExitCode(err))
	}
}
