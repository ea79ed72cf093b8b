package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccess(t *testing.T, result Result) {
	t.Helper()
	assert.Equal(t, 0, result.ExitCode, "Expected exit code 0\nstdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

func AssertFailure(t *testing.T, result Result) {
	t.Helper()
	assert.Equal(t, 1, result.ExitCode, "Expected exit code 1\nstdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

func AssertOutputContains(t *testing.T, output, expected string) {
	t.Helper()
	assert.Contains(t, output, expected, "Expected output containing '%s', got: %s", expected, output)
}

func AssertOutputNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	assert.NotContains(t, output, unexpected, "Expected output without '%s', got: %s", unexpected, output)
}

func AssertHelpfulError(t *testing.T, output string) {
	t.Helper()

	helpfulElements := []string{
		"Solutions:",
		"Solution:",
		"Cause:",
		"Tip:",
		"•",
		"Examples:",
		"Usage:",
	}

	found := false
	for _, element := range helpfulElements {
		if strings.Contains(output, element) {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("Error message does not appear to be helpful. Got: %s", output)
	}
}

func AssertMultipleStringsInOutput(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		assert.Contains(t, output, exp, "Expected output to contain '%s', got: %s", exp, output)
	}
}

// AssertStepsInOrder checks that each step appears after the previous one
func AssertStepsInOrder(t *testing.T, output string, steps []string) {
	t.Helper()

	rest := output
	for _, step := range steps {
		idx := strings.Index(rest, step)
		if idx < 0 {
			t.Errorf("Expected step '%s' (in order), got: %s", step, output)
			return
		}
		rest = rest[idx+len(step):]
	}
}

func AssertFileExists(t *testing.T, repo *TestRepo, path string) {
	t.Helper()
	assert.True(t, repo.HasFile(path), "Expected file '%s' to exist", path)
}

func AssertCleanWorkingTree(t *testing.T, repo *TestRepo) {
	t.Helper()
	assert.Empty(t, repo.GitStatus(), "Expected clean working tree")
}
