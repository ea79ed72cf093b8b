package git

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/satococoa/git-auto-rebase/internal/command"
	"github.com/satococoa/git-auto-rebase/internal/errors"
)

type fakeExecutor struct {
	commands []command.Command
	output   string
	err      error
	execErr  error
	empty    bool
}

func (f *fakeExecutor) Execute(commands []command.Command) (*command.ExecutionResult, error) {
	f.commands = append(f.commands, commands...)
	if f.execErr != nil {
		return nil, f.execErr
	}
	if f.empty {
		return &command.ExecutionResult{}, nil
	}
	return &command.ExecutionResult{
		Results: []command.Result{{Command: commands[0], Output: f.output, Error: f.err}},
	}, nil
}

func TestRepositoryRunsInPath(t *testing.T) {
	exec := &fakeExecutor{output: "feature"}
	repo := NewRepository("/work/repo", exec)

	branch, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if branch != "feature" {
		t.Errorf("Expected branch feature, got %s", branch)
	}
	if got := exec.commands[0].WorkDir; got != "/work/repo" {
		t.Errorf("Expected WorkDir /work/repo, got %q", got)
	}
}

func TestRepositoryEmptyPathUsesProcessDirectory(t *testing.T) {
	exec := &fakeExecutor{}
	repo := NewRepository("", exec)

	if err := repo.Push(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := exec.commands[0].WorkDir; got != "" {
		t.Errorf("Expected empty WorkDir, got %q", got)
	}
}

func TestRepositoryCommands(t *testing.T) {
	tests := []struct {
		name string
		call func(r *Repository) error
		args []string
	}{
		{"commit", func(r *Repository) error { return r.Commit("fix: it's \"done\"") }, []string{"commit", "-m", "fix: it's \"done\""}},
		{"amend", func(r *Repository) error { return r.AmendNoEdit() }, []string{"commit", "--amend", "--no-edit"}},
		{"push", func(r *Repository) error { return r.Push() }, []string{"push"}},
		{"force push", func(r *Repository) error { return r.PushForceWithLease() }, []string{"push", "--force-with-lease"}},
		{"pull", func(r *Repository) error { return r.Pull("origin", "main") }, []string{"pull", "origin", "main"}},
		{"checkout", func(r *Repository) error { return r.Checkout("feature") }, []string{"checkout", "feature"}},
		{"rebase", func(r *Repository) error { return r.Rebase("main") }, []string{"rebase", "main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{}
			repo := NewRepository("", exec)

			if err := tt.call(repo); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(exec.commands) != 1 {
				t.Fatalf("Expected 1 command, got %d", len(exec.commands))
			}
			if !reflect.DeepEqual(exec.commands[0].Args, tt.args) {
				t.Errorf("Expected args %v, got %v", tt.args, exec.commands[0].Args)
			}
		})
	}
}

func TestHasStagedChanges(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"nothing staged", "", false},
		{"one file", "app.go", true},
		{"several files", "a.go\nb.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository("", &fakeExecutor{output: tt.output})

			got, err := repo.HasStagedChanges()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRequireRepository(t *testing.T) {
	repo := NewRepository("", &fakeExecutor{err: fmt.Errorf("exit status 128")})

	err := repo.RequireRepository()
	if err == nil {
		t.Fatal("Expected error outside a repository")
	}
	if !strings.Contains(err.Error(), "not in a git repository") {
		t.Errorf("Expected not-in-repository error, got %v", err)
	}
}

func TestRunWrapsFailures(t *testing.T) {
	t.Run("plain error becomes a command error", func(t *testing.T) {
		repo := NewRepository("", &fakeExecutor{output: "partial", err: fmt.Errorf("exit status 1")})

		err := repo.Rebase("main")
		cmdErr, ok := errors.AsCommandError(err)
		if !ok {
			t.Fatalf("Expected CommandError, got %T", err)
		}
		if cmdErr.Command != "git rebase main" {
			t.Errorf("Expected command 'git rebase main', got %q", cmdErr.Command)
		}
	})

	t.Run("command error passes through", func(t *testing.T) {
		original := errors.NewCommandError("git push", "rejected", fmt.Errorf("exit status 1"))
		repo := NewRepository("", &fakeExecutor{err: original})

		err := repo.Push()
		if err != original {
			t.Errorf("Expected original error, got %v", err)
		}
	})

	t.Run("executor error", func(t *testing.T) {
		repo := NewRepository("", &fakeExecutor{execErr: fmt.Errorf("boom")})

		_, err := repo.Status()
		if _, ok := errors.AsCommandError(err); !ok {
			t.Fatalf("Expected CommandError, got %v", err)
		}
	})

	t.Run("no results", func(t *testing.T) {
		repo := NewRepository("", &fakeExecutor{empty: true})

		_, err := repo.Toplevel()
		if err == nil || !strings.Contains(err.Error(), "no command results") {
			t.Errorf("Expected no command results error, got %v", err)
		}
	})
}
