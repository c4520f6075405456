package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/nathanguimaraes/frontend-bank/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NetworkError means the request could not be sent or completed at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError is a non-2xx backend response. Message carries the
// backend's own message verbatim when the body provides one.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service responded with status %d", e.Status)
}

// ValidationError is a client-side rejection, scoped to a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

// Client talks to the banking service over HTTP/JSON. Every call makes
// a fresh request; there is no caching and no retrying.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		http:    &http.Client{},
		log:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "banking-client"}),
	}
}

// NormalizeBaseURL adds an http scheme when missing and strips any
// trailing slash so paths can be appended directly.
func NormalizeBaseURL(u string) string {
	u = strings.TrimSpace(u)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	return strings.TrimRight(u, "/")
}

type transferRequest struct {
	Value float64 `json:"value"`
	Payer int     `json:"payer"`
	Payee int     `json:"payee"`
}

// SubmitTransfer asks the backend to move value from payer to payee.
// The backend decides whether the transfer is allowed (balance, wallet
// type); its rejection message is forwarded untouched.
func (c *Client) SubmitTransfer(ctx context.Context, value float64, payerID, payeeID int) (*domain.Transfer, error) {
	if value <= 0 {
		return nil, &ValidationError{Field: "value", Reason: "must be a positive amount"}
	}
	if payeeID <= 0 {
		return nil, &ValidationError{Field: "payee", Reason: "missing recipient account id"}
	}

	body, err := json.Marshal(transferRequest{Value: value, Payer: payerID, Payee: payeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	var transfer domain.Transfer
	if err := c.do(req, &transfer); err != nil {
		return nil, err
	}

	c.log.Info("transfer submitted", "transfer_id", transfer.ID, "value", transfer.Value, "payee", payeeID)
	return &transfer, nil
}

// ListSentTransfers returns every transfer the account has sent.
func (c *Client) ListSentTransfers(ctx context.Context, accountID int) ([]domain.Transfer, error) {
	return c.listTransfers(ctx, "sender", accountID)
}

// ListReceivedTransfers returns every transfer the account has received.
func (c *Client) ListReceivedTransfers(ctx context.Context, accountID int) ([]domain.Transfer, error) {
	return c.listTransfers(ctx, "receiver", accountID)
}

func (c *Client) listTransfers(ctx context.Context, side string, accountID int) ([]domain.Transfer, error) {
	url := c.baseURL + "/transfers/" + side + "/" + strconv.Itoa(accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s transfers request: %w", side, err)
	}

	var transfers []domain.Transfer
	if err := c.do(req, &transfers); err != nil {
		return nil, err
	}

	c.log.Debug("fetched transfers", "side", side, "account_id", accountID, "count", len(transfers))
	return transfers, nil
}

// GetAccount fetches the wallet record for an account.
func (c *Client) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	url := c.baseURL + "/wallets/" + strconv.Itoa(accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build wallet request: %w", err)
	}

	var account domain.Account
	if err := c.do(req, &account); err != nil {
		return nil, err
	}

	c.log.Debug("fetched account", "account_id", account.ID)
	return &account, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		svcErr := &ServiceError{Status: resp.StatusCode, Message: serviceMessage(resp.Body)}
		c.log.Warn("backend rejected request", "path", req.URL.Path, "status", resp.StatusCode, "message", svcErr.Message)
		return svcErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// serviceMessage pulls a human-readable message out of an error body.
// Backends here answer either {"message": ...} or {"error": ...}; a
// plain-text body is used as-is.
func serviceMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
