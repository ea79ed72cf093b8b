// Package app wires the workflow runner behind each binary's command line.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/git-auto-rebase/internal/command"
	"github.com/satococoa/git-auto-rebase/internal/config"
	"github.com/satococoa/git-auto-rebase/internal/errors"
	"github.com/satococoa/git-auto-rebase/internal/git"
	"github.com/satococoa/git-auto-rebase/internal/logger"
	"github.com/satococoa/git-auto-rebase/internal/ui"
	"github.com/satococoa/git-auto-rebase/internal/workflow"
)

const debugFlagName = "debug"

// Variable to allow mocking in tests
var newExecutor = command.NewRealExecutor

// DebugFlag traces every git invocation to stderr
func DebugFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  debugFlagName,
		Usage: "Print every git command and its duration to stderr",
	}
}

// Writer returns the root command's output writer
func Writer(cmd *cli.Command) io.Writer {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return w
}

// ErrWriter returns the root command's error writer
func ErrWriter(cmd *cli.Command) io.Writer {
	w := cmd.Root().ErrWriter
	if w == nil {
		w = os.Stderr
	}
	return w
}

// NewRunner builds a workflow runner for the repository containing the
// working directory.
func NewRunner(cmd *cli.Command) (*workflow.Runner, error) {
	cfg, err := LoadConfig(git.NewRepository("", newExecutor(logger.Nop())))
	if err != nil {
		return nil, err
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if cmd.Bool(debugFlagName) {
		level = logger.LevelDebug
	}
	log := logger.New(ErrWriter(cmd), level)

	repo := git.NewRepository("", newExecutor(log))
	return workflow.NewRunner(repo, cfg, ui.NewPrinter(Writer(cmd)), ui.NewTerminalConfirmer(), log), nil
}

// LoadConfig reads the repository configuration. Outside a repository the
// defaults are returned and the workflow's own check reports the problem.
func LoadConfig(repo *git.Repository) (*config.Config, error) {
	root, err := repo.Toplevel()
	if err != nil {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, errors.ConfigLoadFailed(filepath.Join(root, config.ConfigFileName), err)
	}
	return cfg, nil
}

// Run executes the command line and returns the process exit code. This is
// the only place an error is reported to the user.
func Run(ctx context.Context, cmd *cli.Command, args []string) int {
	if err := cmd.Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(ErrWriter(cmd), "%v\n", err)
		return 1
	}
	return 0
}
