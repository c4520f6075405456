package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/domain"
	"github.com/nathanguimaraes/frontend-bank/internal/spending"
	"github.com/nathanguimaraes/frontend-bank/internal/theme"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHome_LoadedBatchPopulatesScreen(t *testing.T) {
	m := newHomeModel(nil, 1, testStyles())
	m.seq = 1
	m.state = stateLoading

	now := time.Now()
	msg := homeLoadedMsg{
		seq:     1,
		account: &domain.Account{ID: 1, FullName: "Alice Souza", Balance: 70},
		sent: []domain.Transfer{
			{ID: "s1", Sender: domain.Account{ID: 1}, Receiver: domain.Account{ID: 2, FullName: "Bruno Lima"}, Value: 30, Date: now},
		},
		received: []domain.Transfer{
			{ID: "r1", Sender: domain.Account{ID: 2, FullName: "Bruno Lima"}, Receiver: domain.Account{ID: 1}, Value: 50, Date: now.Add(-time.Hour)},
		},
	}
	m.update(msg)

	if m.state != stateLoaded {
		t.Fatalf("expected loaded state, got %d", m.state)
	}
	if len(m.transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(m.transactions))
	}
	if m.transactions[0].Type != domain.Expense {
		t.Error("the sent transfer should lead as an expense")
	}
	if len(m.buckets) != 7 {
		t.Errorf("home starts on the week window, expected 7 buckets, got %d", len(m.buckets))
	}
}

func TestHome_StaleResultIsDropped(t *testing.T) {
	m := newHomeModel(nil, 1, testStyles())
	m.seq = 2 // a newer visit superseded the one this result belongs to
	m.state = stateLoading

	m.update(homeLoadedMsg{seq: 1, err: errors.New("boom")})

	if m.state != stateLoading {
		t.Errorf("stale result must not touch the screen, state moved to %d", m.state)
	}
	if m.errMsg != "" {
		t.Errorf("stale error leaked into the screen: %q", m.errMsg)
	}
}

func TestHome_CancelledBatchResultIsDropped(t *testing.T) {
	m := newHomeModel(nil, 1, testStyles())
	m.seq = 1
	m.state = stateLoading
	_, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	// Navigating away cancels the batch; the batch still settles and
	// reports its own cancellation under the seq it started with.
	m.leave()
	m.update(homeLoadedMsg{seq: 1, err: context.Canceled})

	if m.state == stateFailed {
		t.Error("a cancelled batch must not flip the abandoned screen to failed")
	}
	if m.errMsg != "" {
		t.Errorf("cancellation error leaked into the screen: %q", m.errMsg)
	}
}

func TestProfile_CancelledLoadResultIsDropped(t *testing.T) {
	m := newProfileModel(nil, 1, testStyles())
	m.seq = 1
	m.state = stateLoading
	_, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.leave()
	m.update(profileLoadedMsg{seq: 1, err: context.Canceled})

	if m.state == stateFailed || m.errMsg != "" {
		t.Errorf("cancelled load touched the abandoned screen: state %d, err %q", m.state, m.errMsg)
	}
}

func TestTransfer_CancelledSubmitResultIsDropped(t *testing.T) {
	m := newTransferModel(nil, 1, t.TempDir(), testStyles())
	m.seq = 1
	m.stage = stageSubmitting
	_, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.leave()
	m.update(transferSubmittedMsg{seq: 1, err: context.Canceled})

	if m.submitErr != "" {
		t.Errorf("cancelled submission surfaced an error on the abandoned screen: %q", m.submitErr)
	}
}

func TestHome_BatchFailureFailsWholeScreen(t *testing.T) {
	m := newHomeModel(nil, 1, testStyles())
	m.seq = 1
	m.state = stateLoading

	m.update(homeLoadedMsg{seq: 1, err: &client.ServiceError{Status: 500, Message: "wallet service unavailable"}})

	if m.state != stateFailed {
		t.Fatalf("expected failed state, got %d", m.state)
	}
	if m.errMsg != "wallet service unavailable" {
		t.Errorf("backend message must be shown verbatim, got %q", m.errMsg)
	}
}

func TestHome_WindowSwitchRecomputesBuckets(t *testing.T) {
	m := newHomeModel(nil, 1, testStyles())
	m.seq = 1
	m.state = stateLoading
	m.update(homeLoadedMsg{seq: 1, account: &domain.Account{ID: 1}})

	m.update(keyPress('y'))
	if m.window != spending.Year || len(m.buckets) != 12 {
		t.Errorf("expected 12 year buckets, got %d (window %s)", len(m.buckets), m.window)
	}

	m.update(keyPress('m'))
	if len(m.buckets) != 30 {
		t.Errorf("expected 30 month buckets, got %d", len(m.buckets))
	}

	m.update(keyPress('w'))
	if len(m.buckets) != 7 {
		t.Errorf("expected 7 week buckets, got %d", len(m.buckets))
	}
}

func TestTransfer_SuccessFreezesReceipt(t *testing.T) {
	m := newTransferModel(nil, 1, t.TempDir(), testStyles())
	m.seq = 1
	m.stage = stageSubmitting

	transfer := &domain.Transfer{
		ID:       "t1",
		Sender:   domain.Account{ID: 1, FullName: "Alice Souza"},
		Receiver: domain.Account{ID: 2, FullName: "Bruno Lima"},
		Value:    30,
	}
	m.update(transferSubmittedMsg{seq: 1, transfer: transfer})

	if m.stage != stageReceipt {
		t.Fatalf("expected receipt stage, got %d", m.stage)
	}
	if m.transfer.ID != "t1" || m.completedAt.IsZero() {
		t.Error("receipt should freeze the transfer and its completion time")
	}
}

func TestTransfer_RejectionReturnsToFormWithMessage(t *testing.T) {
	m := newTransferModel(nil, 1, t.TempDir(), testStyles())
	m.seq = 1
	m.stage = stageSubmitting

	m.update(transferSubmittedMsg{seq: 1, err: &client.ServiceError{Status: 422, Message: "transfer not allowed for this wallet type"}})

	if m.stage != stageForm {
		t.Fatalf("expected to land back on the form, got stage %d", m.stage)
	}
	if m.submitErr != "transfer not allowed for this wallet type" {
		t.Errorf("rejection message lost: %q", m.submitErr)
	}
}

func TestTransfer_SaveReceiptWritesFile(t *testing.T) {
	dir := t.TempDir()
	m := newTransferModel(nil, 1, dir, testStyles())
	m.stage = stageReceipt
	m.transfer = &domain.Transfer{ID: "t1", Sender: domain.Account{FullName: "A"}, Receiver: domain.Account{FullName: "B"}, Value: 30}
	m.completedAt = time.Now()

	cmd := m.update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg, ok := cmd().(receiptSavedMsg)
	if !ok {
		t.Fatalf("expected receiptSavedMsg, got %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("save failed: %v", msg.err)
	}

	m.update(msg)
	if m.savedPath == "" {
		t.Error("saved path should be shown after export")
	}
}

func TestTransfer_FieldValidation(t *testing.T) {
	amounts := map[string]bool{
		"30":    true,
		"30,50": true,
		"0":     false,
		"-1":    false,
		"abc":   false,
		"":      false,
	}
	for in, ok := range amounts {
		if err := validateAmount(in); (err == nil) != ok {
			t.Errorf("validateAmount(%q): unexpected result %v", in, err)
		}
	}

	payees := map[string]bool{
		"2":  true,
		"0":  false,
		"-2": false,
		"x":  false,
	}
	for in, ok := range payees {
		if err := validatePayee(in); (err == nil) != ok {
			t.Errorf("validatePayee(%q): unexpected result %v", in, err)
		}
	}
}

func TestSettings_TogglePersistsAndNotifies(t *testing.T) {
	store, err := theme.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	m := newSettingsModel(store, theme.Light, testStyles())

	cmd := m.update(keyPress('d'))
	if cmd == nil {
		t.Fatal("expected a toggle command")
	}

	msg, ok := cmd().(themeChangedMsg)
	if !ok {
		t.Fatalf("expected themeChangedMsg, got %T", msg)
	}
	if msg.mode != theme.Dark || msg.err != nil {
		t.Fatalf("unexpected toggle result: %+v", msg)
	}
	if store.Load() != theme.Dark {
		t.Error("toggle must persist the preference")
	}

	m.applyTheme(msg)
	if m.mode != theme.Dark {
		t.Error("settings screen should track the applied mode")
	}
}

func TestWelcome_AdvancesThroughSlidesToHome(t *testing.T) {
	m := newWelcomeModel(testStyles())

	for i := 0; i < len(welcomeSlides)-1; i++ {
		if cmd := m.update(keyPress('l')); cmd != nil {
			t.Fatalf("slide %d should not navigate yet", i)
		}
	}

	cmd := m.update(keyPress('l'))
	if cmd == nil {
		t.Fatal("expected navigation past the last slide")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.to != routeHome {
		t.Fatalf("expected navigation to home, got %#v", nav)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(&client.ServiceError{Status: 500, Message: "boom"}); got != "boom" {
		t.Errorf("service message must pass through verbatim, got %q", got)
	}
	if got := errorMessage(&client.NetworkError{Op: "GET /wallets/1", Err: errors.New("refused")}); got != "could not reach the banking service: refused" {
		t.Errorf("unexpected network message: %q", got)
	}
}
