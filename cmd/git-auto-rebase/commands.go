package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/git-auto-rebase/internal/app"
)

// NewRebaseCommand creates the rebase command definition
func NewRebaseCommand() *cli.Command {
	return &cli.Command{
		Name:  "rebase",
		Usage: "Rebase the current branch onto the main branch and force push (default)",
		Description: "Requires a clean working directory. On the main branch only the latest " +
			"changes are pulled.",
		Action:       rebaseCommand,
		OnUsageError: fallThroughToRebase,
	}
}

// NewAmendCommand creates the amend command definition
func NewAmendCommand() *cli.Command {
	return &cli.Command{
		Name:    "amend",
		Aliases: []string{"amend-push"},
		Usage:   "Amend the last commit without editing its message and force push",
		Description: "Staged changes are folded into the last commit, which is then pushed with " +
			"--force-with-lease. Refused on the main branch.",
		Action: amendCommand,
	}
}

// NewHelpCommand creates the help command definition. It replaces the built-in
// one so that only the exact word "help" is reserved.
func NewHelpCommand() *cli.Command {
	return &cli.Command{
		Name:      "help",
		Usage:     "Show usage for the tool or one command",
		ArgsUsage: "[command]",
		Action:    helpCommand,
	}
}

func rebaseCommand(_ context.Context, cmd *cli.Command) error {
	runner, err := app.NewRunner(cmd)
	if err != nil {
		return err
	}
	return runner.AutoRebase()
}

func amendCommand(_ context.Context, cmd *cli.Command) error {
	runner, err := app.NewRunner(cmd)
	if err != nil {
		return err
	}
	return runner.AmendPush()
}

func helpCommand(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	if name := cmd.Args().First(); name != "" && name != cmd.Name && root.Command(name) != nil {
		return cli.ShowCommandHelp(ctx, root, name)
	}
	return cli.ShowAppHelp(root)
}

// fallThroughToRebase runs the default workflow for flags nothing defines,
// the same as for any other unrecognized input.
func fallThroughToRebase(ctx context.Context, cmd *cli.Command, _ error, _ bool) error {
	return rebaseCommand(ctx, cmd)
}
