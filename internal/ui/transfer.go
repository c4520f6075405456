package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/domain"
	"github.com/nathanguimaraes/frontend-bank/internal/receipt"
)

type transferStage int

const (
	stageForm transferStage = iota
	stageSubmitting
	stageReceipt
)

type transferSubmittedMsg struct {
	seq      int
	transfer *domain.Transfer
	err      error
}

type receiptSavedMsg struct {
	path string
	err  error
}

// transferModel drives the transfer form through
// form → submitting → receipt. The payer is always the signed-in
// account from configuration. After a successful submission the
// resulting transfer is frozen as a receipt that can be exported as
// plain text.
type transferModel struct {
	api        *client.Client
	styles     *Styles
	payerID    int
	receiptDir string

	stage   transferStage
	form    *huh.Form
	amount  string
	payee   string
	spinner spinner.Model

	seq    int
	cancel context.CancelFunc

	// Backend rejection shown above the rebuilt form.
	submitErr string

	transfer    *domain.Transfer
	completedAt time.Time
	savedPath   string
	saveErr     string
}

func newTransferModel(api *client.Client, payerID int, receiptDir string, styles *Styles) transferModel {
	m := transferModel{
		api:        api,
		styles:     styles,
		payerID:    payerID,
		receiptDir: receiptDir,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.form = m.newForm()
	return m
}

func (m *transferModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("value").
				Title("Amount (R$)").
				Placeholder("0.00").
				Value(&m.amount).
				Validate(validateAmount),
			huh.NewInput().
				Key("payee").
				Title("Recipient account ID").
				Value(&m.payee).
				Validate(validatePayee),
		),
	).WithShowHelp(true)
}

// validateAmount is the field-scoped check the form runs inline; the
// client repeats it so the invariant holds without a form in front.
func validateAmount(v string) error {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
	if err != nil || amount <= 0 {
		return errors.New("enter a positive amount")
	}
	return nil
}

func validatePayee(v string) error {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || id <= 0 {
		return errors.New("enter the recipient's numeric account id")
	}
	return nil
}

// enter resets the screen to a blank form each time it becomes visible.
func (m *transferModel) enter() tea.Cmd {
	m.leave()
	m.stage = stageForm
	m.amount, m.payee = "", ""
	m.submitErr = ""
	m.transfer = nil
	m.savedPath, m.saveErr = "", ""
	m.form = m.newForm()
	return m.form.Init()
}

func (m *transferModel) leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.seq++
	}
}

func (m *transferModel) capturingInput() bool {
	return m.stage == stageForm
}

func (m *transferModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transferSubmittedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.leave()
		if msg.err != nil {
			m.stage = stageForm
			m.submitErr = errorMessage(msg.err)
			m.form = m.newForm()
			return m.form.Init()
		}
		m.stage = stageReceipt
		m.transfer = msg.transfer
		m.completedAt = time.Now()
		return nil

	case receiptSavedMsg:
		if msg.err != nil {
			m.saveErr = msg.err.Error()
			return nil
		}
		m.savedPath = msg.path
		return nil

	case spinner.TickMsg:
		if m.stage != stageSubmitting {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return nil
}

func (m *transferModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch m.stage {
	case stageReceipt:
		switch msg.String() {
		case "s":
			return m.saveReceipt()
		case "n":
			return m.enter()
		}
		return nil

	case stageForm:
		model, cmd := m.form.Update(msg)
		if form, ok := model.(*huh.Form); ok {
			m.form = form
		}
		switch m.form.State {
		case huh.StateAborted:
			return navigate(routeHome)
		case huh.StateCompleted:
			value, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(m.amount), ",", "."), 64)
			payeeID, _ := strconv.Atoi(strings.TrimSpace(m.payee))
			return tea.Batch(cmd, m.submit(value, payeeID))
		}
		return cmd
	}
	return nil
}

func (m *transferModel) submit(value float64, payeeID int) tea.Cmd {
	m.leave()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	m.stage = stageSubmitting
	m.submitErr = ""

	seq, api, payerID := m.seq, m.api, m.payerID
	call := func() tea.Msg {
		transfer, err := api.SubmitTransfer(ctx, value, payerID, payeeID)
		return transferSubmittedMsg{seq: seq, transfer: transfer, err: err}
	}
	return tea.Batch(m.spinner.Tick, call)
}

func (m *transferModel) saveReceipt() tea.Cmd {
	transfer, at, dir := *m.transfer, m.completedAt, m.receiptDir
	return func() tea.Msg {
		path, err := receipt.Save(dir, transfer, at)
		return receiptSavedMsg{path: path, err: err}
	}
}

func (m transferModel) view() string {
	s := m.styles
	switch m.stage {
	case stageSubmitting:
		return s.Panel.Render(m.spinner.View() + " Processing your transfer…")
	case stageReceipt:
		return m.receiptView()
	default:
		rows := []string{s.Title.Render("Make a Transfer"), ""}
		if m.submitErr != "" {
			rows = append(rows, s.Error.Render("Transfer failed: ")+s.Text.Render(m.submitErr), "")
		}
		rows = append(rows, m.form.View())
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
}

func (m transferModel) receiptView() string {
	s := m.styles
	t := m.transfer

	row := func(label, value string) string {
		return s.Muted.Render(label+": ") + s.Text.Render(value)
	}

	rows := []string{
		s.Title.Render("Transfer Receipt"),
		s.Muted.Render("Transaction completed successfully"),
		"",
		row("Transfer ID", t.ID),
		s.Muted.Render("Value: ") + s.Income.Render(domain.FormatBRL(t.Value)),
		row("From", t.Sender.FullName),
		row("To", t.Receiver.FullName),
		row("Date", m.completedAt.Format("02/01/2006 15:04:05")),
		"",
	}
	if m.savedPath != "" {
		rows = append(rows, s.Accent.Render("Saved to "+m.savedPath))
	}
	if m.saveErr != "" {
		rows = append(rows, s.Error.Render("Could not save receipt: "+m.saveErr))
	}
	rows = append(rows, s.Help.Render("s: save receipt • n: new transfer • esc: home"))

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
