package command

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/satococoa/git-auto-rebase/internal/errors"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct{}

// NewRealShellExecutor creates a new shell executor that executes real commands
func NewRealShellExecutor() ShellExecutor {
	return &realShellExecutor{}
}

// Execute runs the process and returns its trimmed stdout.
// stderr is captured separately and attached to the returned error.
func (s *realShellExecutor) Execute(name string, args []string, workDir string, interactive bool) (string, error) {
	// #nosec G204 - arguments are passed as a discrete argv, never through a shell
	cmd := exec.Command(name, args...)

	if workDir != "" {
		cmd.Dir = workDir
	}
	if interactive {
		cmd.Stdin = os.Stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		line := Command{Name: name, Args: args}.String()
		return strings.TrimSpace(stdout.String()), errors.NewCommandError(line, stderr.String(), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
