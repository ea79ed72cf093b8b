package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error messages with helpful context and suggestions

// CommandError is returned when an invoked command exits non-zero or cannot be
// started. Command holds the exact command line so the failure can be reproduced.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	details := strings.TrimSpace(e.Stderr)
	if details == "" {
		details = "no additional details available"
	}

	msg := fmt.Sprintf(`git command failed: %s

Details: %s`, e.Command, details)

	if hint := commandHint(e.Stderr); hint != "" {
		msg += "\n\n" + hint
	}

	if e.Err != nil {
		msg += fmt.Sprintf("\n\nOriginal error: %v", e.Err)
	}

	msg += "\n\nTip: Try running the git command manually to see the full error"
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Stderr:  stderr,
		Err:     err,
	}
}

// AsCommandError reports whether err is, or wraps, a CommandError
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

func commandHint(stderr string) string {
	switch {
	case strings.Contains(stderr, "stale info"):
		return `Cause: The remote branch moved since your last fetch (force-with-lease rejected)
Solution: Fetch and inspect the remote changes before pushing again`
	case strings.Contains(stderr, "CONFLICT") || strings.Contains(stderr, "could not apply"):
		return `Cause: Rebase stopped on a conflict
Solutions:
  • Resolve the conflicts, then run 'git rebase --continue'
  • Abort with 'git rebase --abort'`
	case strings.Contains(stderr, "has no upstream branch"):
		return `Cause: The current branch has no upstream
Solution: Push once with 'git push -u <remote> <branch>'`
	case strings.Contains(stderr, "nothing to commit"):
		return `Cause: Nothing is staged for commit
Solution: Stage changes with 'git add' first`
	}
	return ""
}

// Git Repository Errors
func NotInGitRepository() error {
	msg := `not in a git repository

Solutions:
  • Run 'git init' to create a new repository
  • Navigate to an existing git repository
  • Check if you're in the correct directory`
	return errors.New(msg)
}

// Safety Errors
func ProtectedBranch(operation, branch string) error {
	msg := fmt.Sprintf(`cannot %s on %s branch for safety reasons

Solutions:
  • Switch to a feature branch first: git checkout -b <branch-name>
  • Run the git commands manually if you really mean it`, operation, branch)
	return errors.New(msg)
}

func DetachedHead() error {
	return errors.New(`not on a branch (HEAD is detached)

Solution: Check out the branch you want to rebase first: git checkout <branch-name>`)
}

func WorkingTreeDirty(status string) error {
	msg := "working directory is not clean. Please commit or stash your changes first."

	if lines := strings.Split(strings.TrimSpace(status), "\n"); len(lines) > 0 && lines[0] != "" {
		msg += "\n\nUncommitted changes:"
		for _, line := range lines {
			msg += fmt.Sprintf("\n  • %s", strings.TrimSpace(line))
		}
	}

	msg += "\n\nTip: Use 'git stash' to set changes aside temporarily"
	return errors.New(msg)
}

func ForcePushDeclined() error {
	return errors.New(`force push cancelled

Your local branch was updated but nothing was pushed.
Tip: Run 'git push --force-with-lease' when you are ready`)
}

func ConfirmationUnavailable() error {
	return errors.New(`confirmation required before force pushing, but stdin is not a terminal

Solutions:
  • Run the command from an interactive terminal
  • Set 'confirm_force_push: false' in .git-auto-rebase.yml`)
}

// Validation Errors
func CommitMessageRequired(usage string) error {
	msg := fmt.Sprintf(`commit message is required

Usage: %s

Examples:
  • git-commit-auto-rebase fix login redirect
  • git-commit-auto-rebase "add retry to uploader"`, usage)
	return errors.New(msg)
}

// Configuration Errors
func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Run 'git-auto-rebase init' in a scratch repository to see a valid example`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la .git-auto-rebase.yml'`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Delete it and run 'git-auto-rebase init' again`, configPath)
	return errors.New(msg)
}

func ConfigWriteFailed(configPath string, err error) error {
	msg := fmt.Sprintf(`failed to create configuration file: %s

Solution: Check that the repository root is writable

Original error: %v`, configPath, err)
	return errors.New(msg)
}
