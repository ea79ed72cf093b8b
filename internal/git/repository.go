package git

import (
	"github.com/satococoa/git-auto-rebase/internal/command"
	"github.com/satococoa/git-auto-rebase/internal/errors"
)

// Repository runs git against one working directory. An empty path means the
// process working directory.
type Repository struct {
	path     string
	executor command.Executor
}

func NewRepository(path string, executor command.Executor) *Repository {
	return &Repository{
		path:     path,
		executor: executor,
	}
}

// run executes a single command and returns its trimmed stdout. Every failure
// comes back as a *errors.CommandError naming the command.
func (r *Repository) run(cmd command.Command) (string, error) {
	if r.path != "" {
		cmd.WorkDir = r.path
	}

	result, err := r.executor.Execute([]command.Command{cmd})
	if err != nil {
		return "", errors.NewCommandError(cmd.String(), "", err)
	}
	if len(result.Results) == 0 {
		return "", errors.NewCommandError(cmd.String(), "no command results", nil)
	}

	res := result.Results[0]
	if res.Error != nil {
		if _, ok := errors.AsCommandError(res.Error); ok {
			return "", res.Error
		}
		return "", errors.NewCommandError(cmd.String(), res.Output, res.Error)
	}

	return res.Output, nil
}

// RequireRepository fails with a helpful error outside a git repository
func (r *Repository) RequireRepository() error {
	if _, err := r.run(command.GitRevParseGitDir()); err != nil {
		return errors.NotInGitRepository()
	}
	return nil
}

// Toplevel returns the root of the working tree
func (r *Repository) Toplevel() (string, error) {
	return r.run(command.GitShowToplevel())
}

// CurrentBranch returns the checked out branch, or "" on a detached HEAD
func (r *Repository) CurrentBranch() (string, error) {
	return r.run(command.GitCurrentBranch())
}

// HasStagedChanges reports whether anything is staged for commit
func (r *Repository) HasStagedChanges() (bool, error) {
	names, err := r.run(command.GitDiffCachedNameOnly())
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// StagedDiff returns the full staged patch
func (r *Repository) StagedDiff() (string, error) {
	return r.run(command.GitDiffCached())
}

// Status returns porcelain status output; empty means a clean working tree
func (r *Repository) Status() (string, error) {
	return r.run(command.GitStatusPorcelain())
}

func (r *Repository) Commit(message string) error {
	_, err := r.run(command.GitCommit(message))
	return err
}

func (r *Repository) AmendNoEdit() error {
	_, err := r.run(command.GitCommitAmendNoEdit())
	return err
}

func (r *Repository) Push() error {
	_, err := r.run(command.GitPush())
	return err
}

func (r *Repository) PushForceWithLease() error {
	_, err := r.run(command.GitPushForceWithLease())
	return err
}

func (r *Repository) Pull(remote, branch string) error {
	_, err := r.run(command.GitPull(remote, branch))
	return err
}

func (r *Repository) Checkout(branch string) error {
	_, err := r.run(command.GitCheckout(branch))
	return err
}

func (r *Repository) Rebase(upstream string) error {
	_, err := r.run(command.GitRebase(upstream))
	return err
}
