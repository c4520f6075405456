package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/domain"
	"github.com/nathanguimaraes/frontend-bank/internal/spending"
)

const recentTransactions = 8

// homeLoadedMsg carries the settled results of one home-screen batch
// load. Seq identifies the visit that started the batch.
type homeLoadedMsg struct {
	seq      int
	account  *domain.Account
	sent     []domain.Transfer
	received []domain.Transfer
	err      error
}

// homeModel is the account dashboard: balance card, quick actions,
// unified transaction list and the spending chart.
type homeModel struct {
	api       *client.Client
	styles    *Styles
	accountID int

	state   screenState
	seq     int
	cancel  context.CancelFunc
	spinner spinner.Model
	list    viewport.Model

	account      *domain.Account
	transactions []domain.Transaction
	window       spending.Window
	buckets      []spending.Bucket
	errMsg       string
}

func newHomeModel(api *client.Client, accountID int, styles *Styles) homeModel {
	return homeModel{
		api:       api,
		styles:    styles,
		accountID: accountID,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		list:      viewport.New(0, recentTransactions),
		window:    spending.Week,
	}
}

func (m *homeModel) setSize(width, height int) {
	m.list.Width = max(width-30, 20)
}

// load starts a fresh batch: account, sent and received transfers are
// fetched concurrently and the screen renders nothing until all three
// settle. A failure in any one of them fails the whole screen.
func (m *homeModel) load() tea.Cmd {
	m.leave()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	m.state = stateLoading

	seq, api, id := m.seq, m.api, m.accountID
	fetch := func() tea.Msg {
		var (
			account  *domain.Account
			sent     []domain.Transfer
			received []domain.Transfer
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			account, err = api.GetAccount(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			sent, err = api.ListSentTransfers(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			received, err = api.ListReceivedTransfers(gctx, id)
			return err
		})
		err := g.Wait()
		return homeLoadedMsg{seq: seq, account: account, sent: sent, received: received, err: err}
	}

	return tea.Batch(m.spinner.Tick, fetch)
}

// leave cancels the in-flight batch and invalidates its sequence, so
// even the cancelled batch's own result cannot touch this screen after
// the user navigated away.
func (m *homeModel) leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.seq++
	}
}

func (m *homeModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case homeLoadedMsg:
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
		m.transactions = spending.Unify(msg.sent, msg.received)
		m.buckets = spending.Buckets(m.transactions, m.window, time.Now())
		m.state = stateLoaded
		m.list.SetContent(m.transactionRows())
		return nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m.load()
		case "t":
			return navigate(routeTransfer)
		case "w":
			m.setWindow(spending.Week)
		case "m":
			m.setWindow(spending.Month)
		case "y":
			m.setWindow(spending.Year)
		default:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return cmd
		}
	}
	return nil
}

// setWindow recomputes the buckets from scratch; there is no
// incremental update to get wrong.
func (m *homeModel) setWindow(w spending.Window) {
	m.window = w
	m.buckets = spending.Buckets(m.transactions, w, time.Now())
}

func (m homeModel) view() string {
	s := m.styles
	switch m.state {
	case stateLoading:
		return s.Panel.Render(m.spinner.View() + " Loading your account…")
	case stateFailed:
		return s.Panel.Render(s.Error.Render("Error: ") + s.Text.Render(m.errMsg) + "\n" + s.Help.Render("r: retry"))
	case stateLoaded:
	default:
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.balanceCard(),
		m.quickActions(),
		m.transactionPanel(),
		m.chartPanel(),
	)
}

func (m homeModel) balanceCard() string {
	s := m.styles
	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Muted.Render(m.account.FullName),
		s.Title.Render(domain.FormatBRL(m.account.Balance)),
		s.Muted.Render("UBS Bank"),
	))
}

func (m homeModel) quickActions() string {
	s := m.styles
	return s.Panel.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		s.Accent.Render("[t] Transfer"),
		s.Muted.Render("   Gift   Pay   Card"),
	))
}

func (m homeModel) transactionRows() string {
	s := m.styles
	if len(m.transactions) == 0 {
		return s.Muted.Render("No transactions yet.")
	}

	limit := min(len(m.transactions), recentTransactions)
	rows := make([]string, 0, limit)
	for _, tx := range m.transactions[:limit] {
		arrow := s.Income.Render("↓")
		amount := s.Income.Render(domain.FormatBRL(tx.Amount))
		if tx.Type == domain.Expense {
			arrow = s.Expense.Render("↑")
			amount = s.Expense.Render(domain.FormatBRL(tx.Amount))
		}
		date := ""
		if !tx.Date.IsZero() {
			date = tx.Date.Format("02/01/2006")
		}
		rows = append(rows, fmt.Sprintf("%s %s %s %s",
			arrow,
			s.Text.Render(tx.Description),
			s.Muted.Render(date),
			amount,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m homeModel) transactionPanel() string {
	s := m.styles
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Recent Transactions"),
		m.list.View(),
	))
}

func (m homeModel) chartPanel() string {
	s := m.styles
	tabs := make([]string, 0, 3)
	for _, w := range []spending.Window{spending.Week, spending.Month, spending.Year} {
		style := s.Tab
		if w == m.window {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(w.String()))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.Title.Render("Spending Overview  "),
			lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
			s.Help.Render("  w/m/y"),
		),
		renderChart(m.buckets, s),
	))
}
