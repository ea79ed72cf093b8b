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
		Name:  "git-auto-rebase",
		Usage: "Keep a feature branch rebased on the main branch",
		UsageText: "git-auto-rebase [--debug] [command]\n\n" +
			"Without a command the current branch is rebased onto the main branch.",
		Description: "git-auto-rebase switches to the main branch, pulls it, switches back, rebases " +
			"the current branch onto it and pushes with --force-with-lease. It refuses to " +
			"rewrite the main branch itself.",
		Version:         version.Long(),
		HideHelpCommand: true,
		Flags:           []cli.Flag{app.DebugFlag()},
		Action:          rebaseCommand,
		OnUsageError:    fallThroughToRebase,
		Commands: []*cli.Command{
			NewRebaseCommand(),
			NewAmendCommand(),
			NewInitCommand(),
			NewHelpCommand(),
		},
	}
}
