package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/theme"
)

// Styles is rebuilt from the active palette whenever the theme changes.
// Screens share a pointer to the root's instance, so a settings toggle
// restyles every view at once.
type Styles struct {
	Text       lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Income     lipgloss.Style
	Expense    lipgloss.Style
	Panel      lipgloss.Style
	Card       lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
	TabActive  lipgloss.Style
	Tab        lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

func NewStyles(p theme.Palette) Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	return Styles{
		Text:       lipgloss.NewStyle().Foreground(p.Text),
		Title:      lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Accent:     lipgloss.NewStyle().Foreground(p.Accent),
		Income:     lipgloss.NewStyle().Foreground(p.Income),
		Expense:    lipgloss.NewStyle().Foreground(p.Expense),
		Panel:      panel,
		Card:       panel.BorderForeground(p.Accent),
		MenuItem:   lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		MenuActive: lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Padding(0, 1),
		TabActive:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Padding(0, 1),
		Tab:        lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		Error:      lipgloss.NewStyle().Foreground(p.Expense).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(p.Muted),
	}
}
