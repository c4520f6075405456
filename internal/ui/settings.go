package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/theme"
)

type settingsItem struct {
	label string
	value string
}

type settingsSection struct {
	title string
	items []settingsItem
}

var settingsSections = []settingsSection{
	{
		title: "Notifications",
		items: []settingsItem{
			{"Push Notifications", "Enabled"},
			{"Email Notifications", "All"},
			{"Transaction Alerts", "Enabled"},
		},
	},
	{
		title: "Security",
		items: []settingsItem{
			{"Two-Factor Authentication", "Enabled"},
			{"Face ID / Touch ID", "Enabled"},
			{"Change Password", ""},
		},
	},
	{
		title: "Payment Methods",
		items: []settingsItem{
			{"Default Payment Method", "UBS Card"},
			{"Manage Cards", "2 cards"},
		},
	},
}

// settingsModel renders the static preference sections and owns the one
// live control: the dark-mode toggle, persisted through theme.Store.
type settingsModel struct {
	store  *theme.Store
	styles *Styles
	mode   theme.Mode
	// Set when the last toggle could not be persisted; the mode still
	// applies for the running session.
	persistErr string
}

func newSettingsModel(store *theme.Store, mode theme.Mode, styles *Styles) settingsModel {
	return settingsModel{store: store, styles: styles, mode: mode}
}

func (m *settingsModel) update(msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "d" {
		return nil
	}

	next := m.mode.Toggle()
	store := m.store
	return func() tea.Msg {
		err := store.Save(next)
		return themeChangedMsg{mode: next, err: err}
	}
}

func (m *settingsModel) applyTheme(msg themeChangedMsg) {
	m.mode = msg.mode
	m.persistErr = ""
	if msg.err != nil {
		m.persistErr = msg.err.Error()
	}
}

func (m settingsModel) view() string {
	s := m.styles

	panels := make([]string, 0, len(settingsSections)+2)
	for _, section := range settingsSections {
		rows := []string{s.Title.Render(section.title)}
		for _, item := range section.items {
			rows = append(rows, s.Text.Render(item.label)+"  "+s.Muted.Render(item.value))
		}
		panels = append(panels, s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	darkMode := "Off"
	if m.mode == theme.Dark {
		darkMode = "On"
	}
	prefRows := []string{
		s.Title.Render("Preferences"),
		s.Text.Render("Language") + "  " + s.Muted.Render("Portuguese"),
		s.Text.Render("Dark Mode") + "  " + s.Accent.Render(darkMode) + s.Help.Render("  (d to toggle)"),
		s.Text.Render("Currency") + "  " + s.Muted.Render("BRL"),
	}
	if m.persistErr != "" {
		prefRows = append(prefRows, s.Error.Render("Preference not saved: "+m.persistErr))
	}
	panels = append(panels, s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, prefRows...)))

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}
