package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Snippet  lipgloss.Style
	Selected lipgloss.Style
	Body     lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		Help:     lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Snippet:  lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		Body:     lipgloss.NewStyle().PaddingLeft(2),
	}
}
