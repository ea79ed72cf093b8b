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
		Name:      "git-auto-commit-push",
		Usage:     "Commit staged changes and push",
		UsageText: "git-auto-commit-push [--debug] [message...]",
		ArgsUsage: "[message...]",
		Description: "Commits whatever is staged and pushes the current branch. The arguments are " +
			"joined with spaces to form the commit message; without them a message is derived " +
			"from the names of the staged files.",
		Version: version.Long(),
		Flags:   []cli.Flag{app.DebugFlag()},
		Action:  autoCommitPushCommand,
	}
}

func autoCommitPushCommand(_ context.Context, cmd *cli.Command) error {
	runner, err := app.NewRunner(cmd)
	if err != nil {
		return err
	}
	return runner.AutoCommitPush(cmd.Args().Slice())
}
