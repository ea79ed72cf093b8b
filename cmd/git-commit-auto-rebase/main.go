package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/git-auto-rebase/internal/app"
	"github.com/satococoa/git-auto-rebase/internal/version"
)

func main() {
	os.Exit(app.Run(context.Background(), newApp(), os.Args))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "git-commit-auto-rebase",
		Usage:     "Commit, push, then rebase onto the main branch",
		UsageText: "git-commit-auto-rebase [--debug] <commit message>",
		ArgsUsage: "<commit message>",
		Description: "Commits the staged changes with the given message, pushes, then rebases the " +
			"branch onto the freshly pulled main branch and pushes with --force-with-lease. " +
			"Refused on the main branch.",
		Version: version.Long(),
		Flags:   []cli.Flag{app.DebugFlag()},
		Action:  commitAutoRebaseCommand,
	}
}

func commitAutoRebaseCommand(_ context.Context, cmd *cli.Command) error {
	runner, err := app.NewRunner(cmd)
	if err != nil {
		return err
	}
	return runner.CommitAutoRebase(cmd.Args().Slice())
}
