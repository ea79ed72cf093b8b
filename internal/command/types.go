package command

import shellquote "github.com/kballard/go-shellquote"

// Command represents a process to be executed
type Command struct {
	Name        string   // Command name (e.g., "git")
	Args        []string // Discrete arguments, never shell-parsed
	WorkDir     string   // Optional working directory
	Interactive bool     // Attach stdin to the parent's terminal
}

// String renders the command as a copy-pasteable shell line for diagnostics
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// Result represents the result of a single command execution
type Result struct {
	Command Command
	Output  string
	Error   error
}

// ExecutionResult represents the result of executing a sequence of commands.
// The sequence ends at the first failing command.
type ExecutionResult struct {
	Results []Result
}

// Failed returns the first failing result, if any
func (r *ExecutionResult) Failed() (Result, bool) {
	for _, res := range r.Results {
		if res.Error != nil {
			return res, true
		}
	}
	return Result{}, false
}

// ShellExecutor abstracts running a single process
type ShellExecutor interface {
	Execute(name string, args []string, workDir string, interactive bool) (string, error)
}

// Executor runs commands in sequence
type Executor interface {
	Execute(commands []Command) (*ExecutionResult, error)
}
