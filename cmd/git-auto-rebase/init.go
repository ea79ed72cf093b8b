package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/git-auto-rebase/internal/app"
	"github.com/satococoa/git-auto-rebase/internal/command"
	"github.com/satococoa/git-auto-rebase/internal/config"
	"github.com/satococoa/git-auto-rebase/internal/errors"
	"github.com/satococoa/git-auto-rebase/internal/git"
	"github.com/satococoa/git-auto-rebase/internal/logger"
)

const configFileMode = 0o600

const configTemplate = `# git-auto-rebase configuration
version: "1.0"

defaults:
  # Branch that is refreshed and rebased onto. Commands that rewrite
  # history refuse to run while it is checked out.
  main_branch: main

  # Remote the main branch is pulled from
  remote: origin

push:
  # Ask before every push --force-with-lease (requires a terminal)
  confirm_force_push: false

log:
  # debug, info, warn or error. --debug overrides this.
  level: info
`

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a " + config.ConfigFileName + " file in the repository root " +
			"with the default settings and comments explaining each one.",
		Action: initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	repo := git.NewRepository("", command.NewRealExecutor(logger.Nop()))
	if err := repo.RequireRepository(); err != nil {
		return err
	}

	root, err := repo.Toplevel()
	if err != nil {
		return err
	}

	configPath := filepath.Join(root, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.ConfigAlreadyExists(configPath)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), configFileMode); err != nil {
		return errors.ConfigWriteFailed(configPath, err)
	}

	w := app.Writer(cmd)
	_, _ = fmt.Fprintf(w, "Configuration file created: %s\n", configPath)
	_, _ = fmt.Fprintln(w, "Edit this file to change the main branch, remote or push confirmation.")
	return nil
}
