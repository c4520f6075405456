package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/domain"
)

type profileLoadedMsg struct {
	seq     int
	account *domain.Account
	err     error
}

// profileModel shows the wallet holder's identity and account details.
type profileModel struct {
	api       *client.Client
	styles    *Styles
	accountID int

	state   screenState
	seq     int
	cancel  context.CancelFunc
	spinner spinner.Model

	account *domain.Account
	errMsg  string
}

func newProfileModel(api *client.Client, accountID int, styles *Styles) profileModel {
	return profileModel{
		api:       api,
		styles:    styles,
		accountID: accountID,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *profileModel) load() tea.Cmd {
	m.leave()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	m.state = stateLoading

	seq, api, id := m.seq, m.api, m.accountID
	fetch := func() tea.Msg {
		account, err := api.GetAccount(ctx, id)
		return profileLoadedMsg{seq: seq, account: account, err: err}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *profileModel) leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.seq++
	}
}

func (m *profileModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.leave()
		if msg.err != nil {
			m.state = stateFailed
			m.errMsg = errorMessage(msg.err)
			return nil
		}
		m.account = msg.account
		m.state = stateLoaded
		return nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m.load()
		}
	}
	return nil
}

func (m profileModel) view() string {
	s := m.styles
	switch m.state {
	case stateLoading:
		return s.Panel.Render(m.spinner.View() + " Loading your profile…")
	case stateFailed:
		return s.Panel.Render(s.Error.Render("Error: ") + s.Text.Render(m.errMsg) + "\n" + s.Help.Render("r: retry"))
	case stateLoaded:
	default:
		return ""
	}

	a := m.account
	initial := "?"
	if a.FullName != "" {
		initial = string([]rune(a.FullName)[0])
	}

	header := s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Accent.Render("("+initial+") ")+s.Title.Render(a.FullName),
		s.Muted.Render(a.WalletType.Description),
		"",
		s.Muted.Render("Email: ")+s.Text.Render(a.Email),
		s.Muted.Render("CPF/CNPJ: ")+s.Text.Render(a.CpfCnpj),
	))

	allowed := s.Income.Render("Yes")
	if !a.TransferAllowedForWalletType {
		allowed = s.Expense.Render("No")
	}

	details := s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Account Details"),
		s.Muted.Render("Account Type: ")+s.Text.Render(a.WalletType.Description),
		s.Muted.Render("Balance: ")+s.Text.Render(domain.FormatBRL(a.Balance)),
		s.Muted.Render("Transfer Allowed: ")+allowed,
	))

	return lipgloss.JoinVertical(lipgloss.Left, header, details)
}
