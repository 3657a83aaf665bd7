package economy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openheads/headstore/internal/domain"
)

const (
	balancePath = "/v1/players/{playerID}/balance"
	debitPath   = "/v1/players/{playerID}/debit"
	creditPath  = "/v1/players/{playerID}/credit"
)

type balanceResponse struct {
	Balance int `json:"balance"`
}

type amountRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPGateway implements Gateway against the currency service's REST API.
type HTTPGateway struct {
	client *resty.Client
}

// NewHTTPGateway creates a gateway for the currency service at baseURL.
// timeout bounds each individual call.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &HTTPGateway{client: client}
}

// GetBalance returns the player's current balance.
func (g *HTTPGateway) GetBalance(ctx context.Context, playerID string) (int, error) {
	var body balanceResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("playerID", playerID).
		SetResult(&body).
		Get(balancePath)
	if err != nil {
		return 0, gatewayError("get balance", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("get balance: unexpected status %d", resp.StatusCode())
	}
	return body.Balance, nil
}

// TryDebit atomically withdraws amount from the player's balance.
// Returns (false, nil) when the balance is insufficient.
func (g *HTTPGateway) TryDebit(ctx context.Context, playerID string, amount int) (bool, error) {
	var errBody errorResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("playerID", playerID).
		SetBody(amountRequest{Amount: amount, Reason: "head purchase"}).
		SetError(&errBody).
		Post(debitPath)
	if err != nil {
		return false, gatewayError("debit", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return true, nil
	case http.StatusPaymentRequired, http.StatusConflict:
		return false, nil
	default:
		return false, fmt.Errorf("debit: unexpected status %d: %s", resp.StatusCode(), errBody.Error)
	}
}

// Credit deposits amount back into the player's balance. The currency
// service treats credits as unconditional, which lets compensation retry
// without tracking partial success.
func (g *HTTPGateway) Credit(ctx context.Context, playerID string, amount int) error {
	var errBody errorResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("playerID", playerID).
		SetBody(amountRequest{Amount: amount, Reason: "head purchase refund"}).
		SetError(&errBody).
		Post(creditPath)
	if err != nil {
		return gatewayError("credit", err)
	}
	if resp.IsError() {
		return fmt.Errorf("credit: unexpected status %d: %s", resp.StatusCode(), errBody.Error)
	}
	return nil
}

// gatewayError classifies transport failures. Deadline overruns surface
// as ErrGatewayTimeout so callers can distinguish "slow" from "broken".
func gatewayError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrGatewayTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
