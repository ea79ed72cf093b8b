package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satococoa/git-auto-rebase/internal/testutil"
	"github.com/satococoa/git-auto-rebase/internal/version"
)

func TestNewApp(t *testing.T) {
	app := newApp()

	assert.Equal(t, "git-auto-rebase", app.Name)
	assert.NotEmpty(t, app.Usage)
	assert.NotEmpty(t, app.Description)
	assert.Equal(t, version.Long(), app.Version)
	assert.False(t, app.EnableShellCompletion, "a completion command would shadow the default workflow")
	assert.True(t, app.HideHelpCommand)
	assert.NotNil(t, app.OnUsageError)
	assert.NotNil(t, app.Action, "rebase should run when no command is given")

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
		for _, alias := range cmd.Aliases {
			commandNames[alias] = true
		}
	}
	for _, expected := range []string{"rebase", "amend", "amend-push", "init", "help"} {
		assert.True(t, commandNames[expected], "Command %s should exist", expected)
	}

	hasDebugFlag := false
	for _, flag := range app.Flags {
		if flag.Names()[0] == "debug" {
			hasDebugFlag = true
		}
	}
	assert.True(t, hasDebugFlag, "debug flag should exist")
}

func TestAppRun_Version(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"git-auto-rebase", "--version"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "git-auto-rebase version")
}

func TestAppRun_Help(t *testing.T) {
	for _, args := range [][]string{
		{"git-auto-rebase", "--help"},
		{"git-auto-rebase", "-h"},
		{"git-auto-rebase", "help"},
	} {
		t.Run(args[1], func(t *testing.T) {
			var buf bytes.Buffer
			app := newApp()
			app.Writer = &buf

			err := app.Run(context.Background(), args)

			require.NoError(t, err)
			output := buf.String()
			assert.Contains(t, output, "git-auto-rebase")
			assert.Contains(t, output, "Keep a feature branch rebased on the main branch")
			for _, cmd := range []string{"rebase", "amend", "init"} {
				assert.Contains(t, output, cmd, "Command '%s' should be present in help output", cmd)
			}
		})
	}
}

func TestAmendCommandAlias(t *testing.T) {
	cmd := NewAmendCommand()

	assert.Equal(t, "amend", cmd.Name)
	assert.Equal(t, []string{"amend-push"}, cmd.Aliases)
	assert.NotNil(t, cmd.Action)
}

func TestAppRun_HelpForCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"git-auto-rebase", "help", "amend"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Amend the last commit")
	assert.NotContains(t, buf.String(), "Keep a feature branch rebased on the main branch")
}

func TestAppRun_UnrecognizedInputRunsRebase(t *testing.T) {
	testutil.RequireGit(t)
	chdir(t, t.TempDir())

	for _, args := range [][]string{
		{"git-auto-rebase", "foo"},
		{"git-auto-rebase", "--bogus"},
		{"git-auto-rebase", "-x"},
		{"git-auto-rebase", "rebase", "--bogus"},
		{"git-auto-rebase", "completion"},
		{"git-auto-rebase", "h"},
	} {
		t.Run(args[len(args)-1], func(t *testing.T) {
			var out, errOut bytes.Buffer
			app := newApp()
			app.Writer = &out
			app.ErrWriter = &errOut

			err := app.Run(context.Background(), args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "not in a git repository")
			assert.Contains(t, out.String(), "Starting git auto rebase...")
			assert.NotContains(t, errOut.String(), "flag provided but not defined")
			assert.NotContains(t, out.String(), "USAGE:")
		})
	}
}
