package command

import (
	"time"

	"github.com/rs/zerolog"
)

// executor implements Executor interface
type executor struct {
	shell  ShellExecutor
	logger zerolog.Logger
}

// NewExecutor creates a new command executor with the given shell executor
func NewExecutor(shell ShellExecutor, logger zerolog.Logger) Executor {
	return &executor{
		shell:  shell,
		logger: logger,
	}
}

// NewRealExecutor creates an executor that runs real processes
func NewRealExecutor(logger zerolog.Logger) Executor {
	return NewExecutor(NewRealShellExecutor(), logger)
}

// Execute runs the given commands in sequence. It stops at the first failing
// command; the failure is recorded in the last result rather than returned.
func (e *executor) Execute(commands []Command) (*ExecutionResult, error) {
	result := &ExecutionResult{
		Results: make([]Result, 0, len(commands)),
	}

	for _, cmd := range commands {
		start := time.Now()
		output, err := e.shell.Execute(cmd.Name, cmd.Args, cmd.WorkDir, cmd.Interactive)

		e.logger.Debug().
			Str("command", cmd.String()).
			Str("dir", cmd.WorkDir).
			Dur("elapsed", time.Since(start)).
			Bool("ok", err == nil).
			Msg("executed")

		result.Results = append(result.Results, Result{
			Command: cmd,
			Output:  output,
			Error:   err,
		})

		if err != nil {
			break
		}
	}

	return result, nil
}
