// Package commitmsg derives a one-line commit summary from staged diff output.
//
// Paths are read from the "--- a/<path>" and "+++ b/<path>" header lines of a
// unified diff. This is a best-effort heuristic over git's text format: paths
// containing spaces or quoted by git are taken as they appear. Callers fall
// back to Fallback whenever no message can be derived, including a non-empty
// diff without any file header, which never yields a bare "update ".
package commitmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// Fallback is the message used when nothing better can be derived
const Fallback = "update code"

// maxListedFiles is the largest file count still listed by name
const maxListedFiles = 3

// devNull marks the missing side of a created or deleted file
const devNull = "/dev/null"

var headerPattern = regexp.MustCompile(`^[+-]{3} [ab]/(.+)`)

// ChangedFiles extracts the distinct file paths named by diff headers, in the
// order they are first encountered.
func ChangedFiles(diff string) []string {
	var files []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+++") && !strings.HasPrefix(line, "---") {
			continue
		}

		match := headerPattern.FindStringSubmatch(line)
		if match == nil || match[1] == devNull {
			continue
		}

		path := match[1]
		if seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}

	return files
}

// Summarize renders the message for a set of changed files. It reports false
// for an empty set.
func Summarize(files []string) (string, bool) {
	switch n := len(files); {
	case n == 0:
		return "", false
	case n == 1:
		return "update " + files[0], true
	case n <= maxListedFiles:
		return "update " + strings.Join(files, ", "), true
	default:
		return fmt.Sprintf("update %d files", n), true
	}
}

// Generate derives a message from staged diff text. An empty diff, or one
// without any recognizable file header, yields ok == false.
func Generate(diff string) (message string, ok bool) {
	if diff == "" {
		return "", false
	}
	return Summarize(ChangedFiles(diff))
}

// GenerateOrFallback is Generate with the Fallback message substituted when
// nothing can be derived.
func GenerateOrFallback(diff string) string {
	if message, ok := Generate(diff); ok {
		return message
	}
	return Fallback
}
