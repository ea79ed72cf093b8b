// Package ui renders step narration and prompts.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer narrates workflow progress. Styling degrades to plain text when the
// writer is not a color terminal.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Title prints the workflow banner
func (p *Printer) Title(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf(format, args...)))
}

// Step prints the line announcing the next action
func (p *Printer) Step(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Success prints a completion line
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a non-fatal problem
func (p *Printer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.warn.Render("⚠️  "+fmt.Sprintf(format, args...)))
}
