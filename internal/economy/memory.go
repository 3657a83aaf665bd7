package economy

import (
	"context"
	"fmt"
	"sync"
)

// MemoryGateway is an in-process Gateway backed by a map. It is used by
// tests and by local development setups that run without a currency
// service.
type MemoryGateway struct {
	mu       sync.Mutex
	balances map[string]int
}

// NewMemoryGateway creates a gateway seeded with the given balances.
func NewMemoryGateway(balances map[string]int) *MemoryGateway {
	seeded := make(map[string]int, len(balances))
	for id, amount := range balances {
		seeded[id] = amount
	}
	return &MemoryGateway{balances: seeded}
}

// GetBalance returns the player's balance. Unknown players have a zero
// balance rather than an error, matching the currency service's behavior
// of lazily creating accounts.
func (g *MemoryGateway) GetBalance(_ context.Context, playerID string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balances[playerID], nil
}

// TryDebit withdraws amount if the balance covers it.
func (g *MemoryGateway) TryDebit(_ context.Context, playerID string, amount int) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("negative debit amount %d", amount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.balances[playerID] < amount {
		return false, nil
	}
	g.balances[playerID] -= amount
	return true, nil
}

// Credit deposits amount unconditionally.
func (g *MemoryGateway) Credit(_ context.Context, playerID string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("negative credit amount %d", amount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.balances[playerID] += amount
	return nil
}
