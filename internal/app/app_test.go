package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/satococoa/git-auto-rebase/internal/command"
	"github.com/satococoa/git-auto-rebase/internal/config"
	"github.com/satococoa/git-auto-rebase/internal/git"
	"github.com/satococoa/git-auto-rebase/internal/logger"
	"github.com/satococoa/git-auto-rebase/internal/testutil"
)

// branchExecutor answers every command successfully, reporting branch for
// `git branch --show-current` and failing `rev-parse --show-toplevel`.
type branchExecutor struct {
	branch   string
	executed []string
	logger   zerolog.Logger
}

func (b *branchExecutor) Execute(commands []command.Command) (*command.ExecutionResult, error) {
	result := &command.ExecutionResult{}
	for _, cmd := range commands {
		key := strings.Join(cmd.Args, " ")
		b.executed = append(b.executed, key)
		b.logger.Debug().Str("command", cmd.String()).Msg("executed")

		res := command.Result{Command: cmd}
		switch key {
		case "branch --show-current":
			res.Output = b.branch
		case "rev-parse --show-toplevel":
			res.Error = fmt.Errorf("exit status 128")
		}
		result.Results = append(result.Results, res)
		if res.Error != nil {
			break
		}
	}
	return result, nil
}

func stubExecutor(t *testing.T, branch string) *branchExecutor {
	t.Helper()

	fake := &branchExecutor{branch: branch}
	prev := newExecutor
	t.Cleanup(func() { newExecutor = prev })
	newExecutor = func(log zerolog.Logger) command.Executor {
		fake.logger = log
		return fake
	}
	return fake
}

func newTestApp(out, errOut *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:      "git-auto-rebase",
		Writer:    out,
		ErrWriter: errOut,
		Flags:     []cli.Flag{DebugFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			runner, err := NewRunner(cmd)
			if err != nil {
				return err
			}
			return runner.AutoRebase()
		},
	}
}

func TestNewRunner(t *testing.T) {
	t.Run("should narrate to the root writer", func(t *testing.T) {
		// Given: a repository on main
		fake := stubExecutor(t, "main")
		var out, errOut bytes.Buffer

		// When: running the app
		code := Run(context.Background(), newTestApp(&out, &errOut), []string{"git-auto-rebase"})

		// Then: the default configuration drives a pull of origin main
		assert.Equal(t, 0, code)
		assert.Contains(t, fake.executed, "pull origin main")
		assert.Contains(t, out.String(), "Already on main branch")
		assert.Empty(t, errOut.String())
	})

	t.Run("should trace commands with --debug", func(t *testing.T) {
		stubExecutor(t, "main")
		var out, errOut bytes.Buffer

		code := Run(context.Background(), newTestApp(&out, &errOut), []string{"git-auto-rebase", "--debug"})

		assert.Equal(t, 0, code)
		assert.Contains(t, errOut.String(), "git pull origin main")
	})

	t.Run("should report errors once and exit 1", func(t *testing.T) {
		stubExecutor(t, "")
		var out, errOut bytes.Buffer

		code := Run(context.Background(), newTestApp(&out, &errOut), []string{"git-auto-rebase"})

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "HEAD is detached")
		assert.Equal(t, 1, strings.Count(errOut.String(), "HEAD is detached"))
	})
}

func TestWriters(t *testing.T) {
	t.Run("should fall back to process streams", func(t *testing.T) {
		cmd := &cli.Command{Name: "x"}

		assert.Equal(t, os.Stdout, Writer(cmd))
		assert.Equal(t, os.Stderr, ErrWriter(cmd))
	})

	t.Run("should use the root writers", func(t *testing.T) {
		var out, errOut bytes.Buffer
		cmd := &cli.Command{Name: "x", Writer: &out, ErrWriter: &errOut}

		assert.Same(t, &out, Writer(cmd))
		assert.Same(t, &errOut, ErrWriter(cmd))
	})
}

func TestLoadConfig(t *testing.T) {
	testutil.RequireGit(t)

	realRepo := func(dir string) *git.Repository {
		return git.NewRepository(dir, command.NewRealExecutor(logger.Nop()))
	}

	t.Run("should use defaults outside a repository", func(t *testing.T) {
		cfg, err := LoadConfig(realRepo(t.TempDir()))

		require.NoError(t, err)
		assert.Equal(t, config.DefaultMainBranch, cfg.MainBranch())
		assert.Equal(t, config.DefaultRemote, cfg.Remote())
	})

	t.Run("should read the file at the repository root", func(t *testing.T) {
		dir := testutil.InitRepo(t)
		testutil.WriteFile(t, dir, config.ConfigFileName, "defaults:\n  main_branch: trunk\n  remote: upstream\n")
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		cfg, err := LoadConfig(realRepo(sub))

		require.NoError(t, err)
		assert.Equal(t, "trunk", cfg.MainBranch())
		assert.Equal(t, "upstream", cfg.Remote())
	})

	t.Run("should explain invalid YAML", func(t *testing.T) {
		dir := testutil.InitRepo(t)
		testutil.WriteFile(t, dir, config.ConfigFileName, "defaults: [unclosed\n")

		_, err := LoadConfig(realRepo(dir))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration from")
		assert.Contains(t, err.Error(), "YAML syntax error")
	})
}
