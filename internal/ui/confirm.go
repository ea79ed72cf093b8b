package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/satococoa/git-auto-rebase/internal/errors"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// Variable to allow mocking in tests
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalConfirmer prompts on the controlling terminal
type TerminalConfirmer struct {
	In *os.File
}

func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin}
}

func (c *TerminalConfirmer) Confirm(title, description string) (bool, error) {
	if c.In == nil || !isTerminal(c.In) {
		return false, errors.ConfirmationUnavailable()
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Push").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithInput(c.In)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
