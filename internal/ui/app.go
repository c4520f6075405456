package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/config"
	"github.com/nathanguimaraes/frontend-bank/internal/theme"
)

type route int

const (
	routeWelcome route = iota
	routeHome
	routeTransfer
	routeProfile
	routeSettings
)

// screenState is the per-screen load state machine.
type screenState int

const (
	stateIdle screenState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// navigateMsg switches the visible screen.
type navigateMsg struct {
	to route
}

func navigate(to route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// themeChangedMsg is emitted after the settings screen persists a new
// theme preference. Err is non-nil when the preference could not be
// written; the new mode still applies for the running session.
type themeChangedMsg struct {
	mode theme.Mode
	err  error
}

type keyMap struct {
	Home     key.Binding
	Transfer key.Binding
	Profile  key.Binding
	Settings key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "account")),
		Transfer: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "transfer")),
		Profile:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "profile")),
		Settings: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "settings")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Model is the navigation shell: it owns the side menu, the active
// theme and the five screens, and routes messages between them.
type Model struct {
	styles *Styles
	mode   theme.Mode
	keys   keyMap

	route  route
	width  int
	height int

	welcome  welcomeModel
	home     homeModel
	transfer transferModel
	profile  profileModel
	settings settingsModel
}

func New(cfg *config.Config, api *client.Client, store *theme.Store) Model {
	mode := store.Load()
	styles := NewStyles(theme.PaletteFor(mode))
	s := &styles

	return Model{
		styles:   s,
		mode:     mode,
		keys:     defaultKeyMap(),
		route:    routeWelcome,
		welcome:  newWelcomeModel(s),
		home:     newHomeModel(api, cfg.AccountID, s),
		transfer: newTransferModel(api, cfg.AccountID, cfg.ReceiptDir, s),
		profile:  newProfileModel(api, cfg.AccountID, s),
		settings: newSettingsModel(store, mode, s),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.home.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.leaveAll()
			return m, tea.Quit
		}
		if m.route != routeWelcome && !(m.route == routeTransfer && m.transfer.capturingInput()) {
			switch {
			case key.Matches(msg, m.keys.Home):
				return m.goTo(routeHome)
			case key.Matches(msg, m.keys.Transfer):
				return m.goTo(routeTransfer)
			case key.Matches(msg, m.keys.Profile):
				return m.goTo(routeProfile)
			case key.Matches(msg, m.keys.Settings):
				return m.goTo(routeSettings)
			case key.Matches(msg, m.keys.Back) && m.route != routeHome:
				return m.goTo(routeHome)
			}
		}
		return m.updateScreen(msg)

	case navigateMsg:
		return m.goTo(msg.to)

	case themeChangedMsg:
		m.mode = msg.mode
		*m.styles = NewStyles(theme.PaletteFor(msg.mode))
		m.settings.applyTheme(msg)
		return m, nil
	}

	return m.updateScreen(msg)
}

// updateScreen delivers key presses to the visible screen and every
// other message to the screen that owns its type. Completed loads for a
// screen the user already left are dropped by each screen's sequence
// guard.
func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.route {
		case routeWelcome:
			return m, m.welcome.update(keyMsg)
		case routeHome:
			return m, m.home.update(keyMsg)
		case routeTransfer:
			return m, m.transfer.update(keyMsg)
		case routeProfile:
			return m, m.profile.update(keyMsg)
		case routeSettings:
			return m, m.settings.update(keyMsg)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	cmds = append(cmds, m.home.update(msg))
	cmds = append(cmds, m.transfer.update(msg))
	cmds = append(cmds, m.profile.update(msg))
	return m, tea.Batch(cmds...)
}

// goTo cancels whatever the current screen still has in flight, then
// switches and kicks off the next screen's load.
func (m Model) goTo(to route) (tea.Model, tea.Cmd) {
	m.leaveAll()
	m.route = to

	switch to {
	case routeHome:
		return m, m.home.load()
	case routeTransfer:
		return m, m.transfer.enter()
	case routeProfile:
		return m, m.profile.load()
	}
	return m, nil
}

func (m *Model) leaveAll() {
	m.home.leave()
	m.transfer.leave()
	m.profile.leave()
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.route == routeWelcome {
		return m.welcome.view(m.width, m.height)
	}

	var content string
	switch m.route {
	case routeHome:
		content = m.home.view()
	case routeTransfer:
		content = m.transfer.view()
	case routeProfile:
		content = m.profile.view()
	case routeSettings:
		content = m.settings.view()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.helpView())
}

func (m Model) sidebarView() string {
	s := m.styles
	items := []struct {
		label string
		at    route
	}{
		{"[1] Account", routeHome},
		{"[2] Transfer", routeTransfer},
		{"[3] Profile", routeProfile},
		{"[4] Settings", routeSettings},
	}

	rows := []string{s.Title.Render("UBS Bank"), ""}
	for _, item := range items {
		style := s.MenuItem
		if item.at == m.route {
			style = s.MenuActive
		}
		rows = append(rows, style.Render(item.label))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) helpView() string {
	return m.styles.Help.Render(" 1-4 navigate • esc home • ctrl+c quit")
}

// errorMessage converts a client failure into the text a screen shows.
// Backend messages pass through verbatim.
func errorMessage(err error) string {
	var svcErr *client.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Error()
	}
	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the banking service: " + netErr.Err.Error()
	}
	return err.Error()
}
