package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type slide struct {
	title       string
	description string
}

var welcomeSlides = []slide{
	{
		title:       "Get Started Now",
		description: "Join us and take control of your finances, track expenses, income and spending.",
	},
	{
		title:       "Track Your Expenses",
		description: "Get detailed insights into your spending habits. Life gets simpler when we track your progress.",
	},
	{
		title:       "Save More With UBS",
		description: "Set goals and achieve financial freedom with UBS. Make your target with UBS.",
	},
	{
		title:       "Welcome to UBS Switzerland",
		description: "Manage your finances with ease and highest security.",
	},
}

// welcomeModel is the onboarding slide deck. Advancing past the last
// slide lands on the home screen.
type welcomeModel struct {
	styles  *Styles
	current int
}

func newWelcomeModel(styles *Styles) welcomeModel {
	return welcomeModel{styles: styles}
}

func (m *welcomeModel) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ", "right", "l":
		if m.current < len(welcomeSlides)-1 {
			m.current++
			return nil
		}
		return navigate(routeHome)
	case "left", "h":
		if m.current > 0 {
			m.current--
		}
	case "q":
		return tea.Quit
	}
	return nil
}

func (m welcomeModel) view(width, height int) string {
	s := m.styles
	current := welcomeSlides[m.current]

	var dots []string
	for i := range welcomeSlides {
		if i == m.current {
			dots = append(dots, s.Accent.Render("●"))
		} else {
			dots = append(dots, s.Muted.Render("○"))
		}
	}

	next := "next"
	if m.current == len(welcomeSlides)-1 {
		next = "open your account"
	}

	card := s.Card.Width(min(width-4, 60)).Render(lipgloss.JoinVertical(lipgloss.Center,
		strings.Join(dots, " "),
		"",
		s.Title.Render(current.title),
		"",
		s.Text.Render(current.description),
		"",
		s.Help.Render("enter: "+next+" • q: quit"),
	))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
