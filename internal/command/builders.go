package command

const gitBinary = "git"

func git(args ...string) Command {
	return Command{
		Name: gitBinary,
		Args: args,
	}
}

// interactive marks a command as needing the parent's stdin (credential
// prompts, hooks)
func interactive(cmd Command) Command {
	cmd.Interactive = true
	return cmd
}

// GitRevParseGitDir builds the repository detection command
func GitRevParseGitDir() Command {
	return git("rev-parse", "--git-dir")
}

// GitShowToplevel builds a command printing the working tree root
func GitShowToplevel() Command {
	return git("rev-parse", "--show-toplevel")
}

// GitCurrentBranch builds a command printing the checked out branch name
func GitCurrentBranch() Command {
	return git("branch", "--show-current")
}

// GitDiffCachedNameOnly builds a command listing staged file names
func GitDiffCachedNameOnly() Command {
	return git("diff", "--cached", "--name-only")
}

// GitDiffCached builds a command printing the full staged patch
func GitDiffCached() Command {
	return git("diff", "--cached")
}

// GitStatusPorcelain builds a machine-readable status command
func GitStatusPorcelain() Command {
	return git("status", "--porcelain")
}

// GitCommit builds a commit command. The message is a single argument.
func GitCommit(message string) Command {
	return interactive(git("commit", "-m", message))
}

// GitCommitAmendNoEdit builds a command amending HEAD while keeping its message
func GitCommitAmendNoEdit() Command {
	return interactive(git("commit", "--amend", "--no-edit"))
}

// GitPush builds a plain push to the configured upstream
func GitPush() Command {
	return interactive(git("push"))
}

// GitPushForceWithLease builds a force push that is rejected if the remote
// ref moved since it was last fetched
func GitPushForceWithLease() Command {
	return interactive(git("push", "--force-with-lease"))
}

// GitPull builds a pull of branch from remote
func GitPull(remote, branch string) Command {
	return interactive(git("pull", remote, branch))
}

// GitCheckout builds a branch switch
func GitCheckout(branch string) Command {
	return interactive(git("checkout", branch))
}

// GitRebase builds a rebase of the current branch onto upstream
func GitRebase(upstream string) Command {
	return interactive(git("rebase", upstream))
}
