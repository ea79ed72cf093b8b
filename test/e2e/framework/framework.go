package framework

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const (
	dirPerm  = 0755
	filePerm = 0600
)

// Binaries built for the end-to-end tests
const (
	AutoRebase       = "git-auto-rebase"
	AutoCommitPush   = "git-auto-commit-push"
	CommitAutoRebase = "git-commit-auto-rebase"
)

var binaries = []string{AutoRebase, AutoCommitPush, CommitAutoRebase}

type TestEnvironment struct {
	t      *testing.T
	tmpDir string
	binDir string
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:      t,
		tmpDir: tmpDir,
	}

	env.buildBinaries()

	return env
}

func (e *TestEnvironment) buildBinaries() {
	e.t.Helper()

	if dir := os.Getenv("GIT_AUTO_REBASE_E2E_BIN_DIR"); dir != "" {
		for _, name := range binaries {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				e.t.Fatalf("Specified binary not found: %s", filepath.Join(dir, name))
			}
		}
		e.binDir = dir
		return
	}

	e.binDir = filepath.Join(e.tmpDir, "bin")
	projectRoot := e.findProjectRoot()
	for _, name := range binaries {
		cmd := exec.Command("go", "build", "-o", filepath.Join(e.binDir, name), "./cmd/"+name)
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build %s: %v\nOutput: %s", name, err, output)
		}
	}
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// CreateTestRepo creates a repository on main with one commit pushed to a
// bare origin.
func (e *TestEnvironment) CreateTestRepo(name string) *TestRepo {
	e.t.Helper()

	remoteDir := filepath.Join(e.tmpDir, name+"-origin.git")
	repoDir := filepath.Join(e.tmpDir, name)

	e.runInDir(e.tmpDir, "git", "init", "--bare", "--initial-branch=main", remoteDir)
	e.runInDir(e.tmpDir, "git", "init", "--initial-branch=main", repoDir)
	e.runInDir(repoDir, "git", "config", "user.name", "Test User")
	e.runInDir(repoDir, "git", "config", "user.email", "test@example.com")
	e.runInDir(repoDir, "git", "config", "commit.gpgsign", "false")
	e.runInDir(repoDir, "git", "config", "pull.rebase", "false")

	e.writeFile(filepath.Join(repoDir, "README.md"), "# Test Repository")
	e.runInDir(repoDir, "git", "add", ".")
	e.runInDir(repoDir, "git", "commit", "-m", "Initial commit")
	e.runInDir(repoDir, "git", "remote", "add", "origin", remoteDir)
	e.runInDir(repoDir, "git", "push", "-u", "origin", "main")

	return &TestRepo{
		env:    e,
		path:   repoDir,
		remote: remoteDir,
	}
}

func (e *TestEnvironment) CreateNonRepoDir(name string) *TestRepo {
	e.t.Helper()

	dir := filepath.Join(e.tmpDir, name)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}

	return &TestRepo{
		env:  e,
		path: dir,
	}
}

// Run executes one of the built binaries in the environment's temp directory
func (e *TestEnvironment) Run(binary string, args ...string) Result {
	e.t.Helper()
	return e.runBinary(e.tmpDir, binary, args...)
}

func (e *TestEnvironment) runBinary(dir, binary string, args ...string) Result {
	e.t.Helper()

	cmd := exec.Command(filepath.Join(e.binDir, binary), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+e.tmpDir, "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		e.t.Fatalf("Failed to run %s: %v", binary, err)
	}
	return result
}

func (e *TestEnvironment) runInDir(dir, command string, args ...string) string {
	e.t.Helper()

	cmd := exec.Command(command, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("Command failed in %s: %s %s\nOutput: %s\nError: %v",
			dir, command, strings.Join(args, " "), output, err)
	}
	return strings.TrimSpace(string(output))
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// Result captures one binary invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type TestRepo struct {
	env    *TestEnvironment
	path   string
	remote string
}

func (r *TestRepo) Run(binary string, args ...string) Result {
	r.env.t.Helper()
	return r.env.runBinary(r.path, binary, args...)
}

func (r *TestRepo) Git(args ...string) string {
	r.env.t.Helper()
	return r.env.runInDir(r.path, "git", args...)
}

// RemoteGit runs git inside the bare origin
func (r *TestRepo) RemoteGit(args ...string) string {
	r.env.t.Helper()
	return r.env.runInDir(r.remote, "git", args...)
}

func (r *TestRepo) CheckoutNewBranch(name string) {
	r.Git("checkout", "-b", name)
}

func (r *TestRepo) CheckoutBranch(name string) {
	r.Git("checkout", name)
}

func (r *TestRepo) WriteFile(filename, content string) {
	r.env.writeFile(filepath.Join(r.path, filename), content)
}

func (r *TestRepo) StageFile(filename, content string) {
	r.WriteFile(filename, content)
	r.Git("add", filename)
}

func (r *TestRepo) CommitFile(filename, content, message string) {
	r.StageFile(filename, content)
	r.Git("commit", "-m", message)
}

// AdvanceRemoteMain pushes a new commit to origin/main while leaving the
// local main branch where it was.
func (r *TestRepo) AdvanceRemoteMain(filename string) {
	current := r.CurrentBranch()
	r.CheckoutBranch("main")
	r.CommitFile(filename, filename+"\n", "add "+filename)
	r.Git("push", "origin", "main")
	r.Git("reset", "--hard", "HEAD~1")
	r.CheckoutBranch(current)
}

func (r *TestRepo) Path() string {
	return r.path
}

func (r *TestRepo) WriteConfig(content string) {
	r.env.writeFile(filepath.Join(r.path, ".git-auto-rebase.yml"), content)
}

func (r *TestRepo) HasFile(path string) bool {
	_, err := os.Stat(filepath.Join(r.path, path))
	return err == nil
}

func (r *TestRepo) GitStatus() string {
	return r.Git("status", "--porcelain")
}

func (r *TestRepo) CurrentBranch() string {
	return r.Git("branch", "--show-current")
}

func (r *TestRepo) GetCommitHash() string {
	return r.Git("rev-parse", "HEAD")
}

func (r *TestRepo) GetBranchCommitHash(branch string) string {
	return r.Git("rev-parse", branch)
}

func (r *TestRepo) GetRemoteBranchCommitHash(branch string) string {
	return r.RemoteGit("rev-parse", "refs/heads/"+branch)
}

func (r *TestRepo) LastCommitMessage() string {
	return r.Git("log", "-1", "--format=%s")
}
