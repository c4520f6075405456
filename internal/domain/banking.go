package domain

import (
	"math"
	"time"

	money "github.com/Rhymond/go-money"
)

// WalletType classifies an account. Reference data owned by the backend.
type WalletType struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Account is the backend's wallet record. The front end only ever holds
// a read-only snapshot of it, fetched per screen view.
type Account struct {
	ID                           int        `json:"id"`
	FullName                     string     `json:"fullName"`
	CpfCnpj                      string     `json:"cpfCnpj"`
	Email                        string     `json:"email"`
	Balance                      float64    `json:"balance"`
	WalletType                   WalletType `json:"walletType"`
	TransferAllowedForWalletType bool       `json:"transferAllowedForWalletType"`
}

// Transfer is a server-recorded movement of value between two accounts.
// Immutable once created; Date is assigned by the backend.
type Transfer struct {
	ID       string    `json:"id"`
	Sender   Account   `json:"sender"`
	Receiver Account   `json:"receiver"`
	Value    float64   `json:"value"`
	Date     time.Time `json:"date"`
}

type Direction int

const (
	Income Direction = iota
	Expense
)

func (d Direction) String() string {
	if d == Expense {
		return "expense"
	}
	return "income"
}

// Transaction re-expresses a Transfer from one account's perspective.
// Derived fresh on every data load, never persisted. Amount is always
// non-negative; the sign lives in Type.
type Transaction struct {
	ID          string
	Amount      float64
	Type        Direction
	Description string
	Date        time.Time
}

// FormatBRL renders an amount in Brazilian reais, e.g. "R$30,00".
func FormatBRL(v float64) string {
	return money.New(int64(math.Round(v*100)), money.BRL).Display()
}
