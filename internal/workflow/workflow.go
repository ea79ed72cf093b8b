// Package workflow sequences git commands into the commit, push, rebase and
// amend workflows. Each workflow stops at the first failing step and returns
// the error; nothing is retried or rolled back.
package workflow

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/satococoa/git-auto-rebase/internal/commitmsg"
	"github.com/satococoa/git-auto-rebase/internal/config"
	"github.com/satococoa/git-auto-rebase/internal/errors"
	"github.com/satococoa/git-auto-rebase/internal/git"
	"github.com/satococoa/git-auto-rebase/internal/ui"
)

const commitAutoRebaseUsage = "git-commit-auto-rebase <commit message>"

// Runner executes workflows against one repository
type Runner struct {
	repo    *git.Repository
	cfg     *config.Config
	out     *ui.Printer
	confirm ui.Confirmer
	logger  zerolog.Logger
}

// NewRunner creates a workflow runner. confirm is only consulted when the
// configuration asks for force push confirmation.
func NewRunner(
	repo *git.Repository,
	cfg *config.Config,
	out *ui.Printer,
	confirm ui.Confirmer,
	logger zerolog.Logger,
) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{
		repo:    repo,
		cfg:     cfg,
		out:     out,
		confirm: confirm,
		logger:  logger,
	}
}

// AutoCommitPush commits the staged changes and pushes. The message is the
// joined words, or is derived from the staged diff when none are given.
func (r *Runner) AutoCommitPush(words []string) error {
	r.out.Title("Starting auto commit and push...")

	if err := r.repo.RequireRepository(); err != nil {
		return err
	}

	branch, err := r.currentBranch()
	if err != nil {
		return err
	}
	r.logger.Debug().Str("branch", branch).Msg("auto commit push")

	staged, err := r.repo.HasStagedChanges()
	if err != nil {
		return err
	}
	if !staged {
		r.out.Step(`No staged changes to commit. Please run "git add" first.`)
		return nil
	}

	message := strings.Join(words, " ")
	if message == "" {
		r.out.Step("Generating commit message...")
		message = r.generateMessage()
		r.out.Step(`Generated message: "%s"`, message)
	}

	r.out.Step("Committing changes...")
	if err := r.repo.Commit(message); err != nil {
		return err
	}

	r.out.Step("Pushing to remote...")
	if err := r.repo.Push(); err != nil {
		return err
	}

	r.out.Success("Auto commit and push completed successfully!")
	return nil
}

// CommitAutoRebase commits with a required message, pushes, then rebases the
// branch onto the main branch.
func (r *Runner) CommitAutoRebase(words []string) error {
	r.out.Title("Starting git commit auto rebase...")

	if err := r.repo.RequireRepository(); err != nil {
		return err
	}

	branch, err := r.currentBranch()
	if err != nil {
		return err
	}

	if err := r.refuseOnMain("run commit-auto-rebase", branch); err != nil {
		return err
	}

	if branch == "" {
		return errors.DetachedHead()
	}

	message := strings.Join(words, " ")
	if message == "" {
		return errors.CommitMessageRequired(commitAutoRebaseUsage)
	}

	r.out.Step(`Committing changes with message: "%s"`, message)
	if err := r.repo.Commit(message); err != nil {
		return err
	}

	r.out.Step("Pushing changes...")
	if err := r.repo.Push(); err != nil {
		return err
	}

	// No cleanliness check after committing; unstaged edits ride along.
	return r.autoRebase(rebaseOptions{})
}

// AutoRebase refreshes the main branch and rebases the current branch onto it.
// On the main branch it only pulls.
func (r *Runner) AutoRebase() error {
	return r.autoRebase(rebaseOptions{
		requireRepository: true,
		requireClean:      true,
	})
}

type rebaseOptions struct {
	requireRepository bool
	requireClean      bool
}

func (r *Runner) autoRebase(opts rebaseOptions) error {
	r.out.Title("Starting git auto rebase...")

	if opts.requireRepository {
		if err := r.repo.RequireRepository(); err != nil {
			return err
		}
	}

	branch, err := r.currentBranch()
	if err != nil {
		return err
	}

	mainBranch := r.cfg.MainBranch()
	remote := r.cfg.Remote()

	if classifyBranch(branch, mainBranch) == onMain {
		r.out.Step("Already on %s branch, just pulling latest changes...", mainBranch)
		if err := r.repo.Pull(remote, mainBranch); err != nil {
			return err
		}
		r.out.Success("Done!")
		return nil
	}

	if branch == "" {
		return errors.DetachedHead()
	}

	if opts.requireClean {
		r.out.Step("Checking if working directory is clean...")
		status, err := r.repo.Status()
		if err != nil {
			return err
		}
		if status != "" {
			return errors.WorkingTreeDirty(status)
		}
	}

	r.out.Step("Switching to %s branch...", mainBranch)
	if err := r.repo.Checkout(mainBranch); err != nil {
		return err
	}

	r.out.Step("Pulling latest changes from %s...", mainBranch)
	if err := r.repo.Pull(remote, mainBranch); err != nil {
		return err
	}

	r.out.Step("Switching back to %s branch...", branch)
	if err := r.repo.Checkout(branch); err != nil {
		return err
	}

	r.out.Step("Rebasing %s onto %s...", branch, mainBranch)
	if err := r.repo.Rebase(mainBranch); err != nil {
		return err
	}

	if err := r.forcePush(branch); err != nil {
		return err
	}

	r.out.Success("Git auto rebase completed successfully!")
	return nil
}

// AmendPush amends the last commit without editing its message and force
// pushes with lease. It refuses to run on the main branch.
func (r *Runner) AmendPush() error {
	r.out.Title("Starting git amend and push...")

	if err := r.repo.RequireRepository(); err != nil {
		return err
	}

	branch, err := r.currentBranch()
	if err != nil {
		return err
	}

	if err := r.refuseOnMain("amend and force push", branch); err != nil {
		return err
	}

	r.out.Step("Amending last commit without editing message...")
	if err := r.repo.AmendNoEdit(); err != nil {
		return err
	}

	if err := r.forcePush(branch); err != nil {
		return err
	}

	r.out.Success("Git amend and push completed successfully!")
	return nil
}

func (r *Runner) currentBranch() (string, error) {
	branch, err := r.repo.CurrentBranch()
	if err != nil {
		return "", err
	}
	r.out.Step("Current branch: %s", branch)
	return branch, nil
}

func (r *Runner) refuseOnMain(operation, branch string) error {
	mainBranch := r.cfg.MainBranch()
	if classifyBranch(branch, mainBranch) == onMain {
		r.logger.Debug().Str("operation", operation).Msg("refused on protected branch")
		return errors.ProtectedBranch(operation, mainBranch)
	}
	return nil
}

func (r *Runner) forcePush(branch string) error {
	if r.cfg.Push.ConfirmForcePush {
		if r.confirm == nil {
			return errors.ConfirmationUnavailable()
		}
		ok, err := r.confirm.Confirm(
			fmt.Sprintf("Force push %s?", branch),
			"The push uses --force-with-lease and is rejected if the remote moved since your last fetch.",
		)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ForcePushDeclined()
		}
	}

	r.out.Step("Pushing changes with force-with-lease...")
	return r.repo.PushForceWithLease()
}

// generateMessage never fails: anything that prevents deriving a message
// from the staged diff yields commitmsg.Fallback.
func (r *Runner) generateMessage() string {
	diff, err := r.repo.StagedDiff()
	if err != nil {
		r.logger.Warn().Err(err).Msg("reading staged diff failed")
		r.out.Warn("Error generating commit message")
		return commitmsg.Fallback
	}
	return commitmsg.GenerateOrFallback(diff)
}
