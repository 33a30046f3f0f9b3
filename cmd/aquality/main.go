package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/pthm/aquality/internal/cmd"
)

func main() {
	root := cmd.NewRoot()

	// Version and man pages are handled by the command itself: -V prints the
	// version and positional arguments must never resolve to subcommands.
	err := fang.Execute(context.Background(), root.Command,
		fang.WithoutVersion(),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	)

	os.Exit(root.ExitCode(err))
}
