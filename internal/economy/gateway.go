// Package economy talks to the currency service that holds player balances.
// The store never owns currency; every debit and credit goes through the
// gateway so balances stay authoritative in one place.
package economy

import "context"

// Gateway is the currency-side contract used by acquisition flows.
//
// TryDebit is the only conditional call: it reports (false, nil) when the
// player cannot afford the amount, reserving errors for transport and
// service failures. Credit is used for compensation and must be safe to
// retry.
type Gateway interface {
	GetBalance(ctx context.Context, playerID string) (int, error)
	TryDebit(ctx context.Context, playerID string, amount int) (bool, error)
	Credit(ctx context.Context, playerID string, amount int) error
}
