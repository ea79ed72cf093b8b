// Package testutil provides helpers shared across tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	MainBranch = "main"
	RemoteName = "origin"
)

// ConfigureTestRepo applies common git configuration used in tests.
//
// The runner is responsible for executing git commands within the provided
// repository directory and should handle errors appropriately.
func ConfigureTestRepo(t *testing.T, repoDir string, runner func(dir string, args ...string)) {
	t.Helper()

	commands := [][]string{
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
		{"config", "pull.rebase", "false"},
	}

	for _, args := range commands {
		runner(repoDir, args...)
	}
}

// RequireGit skips the test when no git binary is available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// InitRepo creates a repository on the main branch holding a single commit
func InitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(MainBranch)},
	})
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Failed to read repo config: %v", err)
	}
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	cfg.Raw.Section("commit").SetOption("gpgsign", "false")
	cfg.Raw.Section("pull").SetOption("rebase", "false")
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("Failed to write repo config: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to open worktree: %v", err)
	}
	WriteFile(t, dir, "README.md", "# Test Repo\n")
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("Failed to add README: %v", err)
	}
	if _, err := wt.Commit("Initial commit", &gogit.CommitOptions{Author: signature()}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return dir
}

// InitRepoWithRemote creates a working repository whose main branch tracks
// main on a bare origin. It returns the working and remote directories.
func InitRepoWithRemote(t *testing.T) (string, string) {
	t.Helper()

	dir := InitRepo(t)
	remoteDir := t.TempDir()
	if _, err := gogit.PlainInitWithOptions(remoteDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(MainBranch)},
		Bare:        true,
	}); err != nil {
		t.Fatalf("Failed to init remote: %v", err)
	}

	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		t.Fatalf("Failed to open repo: %v", err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: RemoteName,
		URLs: []string{remoteDir},
	}); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}

	Git(t, dir, "push", "-u", RemoteName, MainBranch)
	return dir, remoteDir
}

// Git runs the git CLI in dir and returns its trimmed output
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output))
}

// WriteFile writes content to name under dir, creating parent directories
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// CommitFile writes, stages and commits a single file with the git CLI
func CommitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()

	WriteFile(t, dir, name, content)
	Git(t, dir, "add", name)
	Git(t, dir, "commit", "-m", message)
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Now(),
	}
}
