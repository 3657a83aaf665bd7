package domain

import "time"

// AcquireMode describes how a catalog entry can be obtained.
type AcquireMode string

const (
	// AcquireModePurchasable entries are bought through the economy gateway.
	AcquireModePurchasable AcquireMode = "purchasable"
	// AcquireModeReward entries are granted without payment (quest rewards, free heads).
	AcquireModeReward AcquireMode = "reward"
	// AcquireModeAdminGranted entries can only be granted by an admin.
	AcquireModeAdminGranted AcquireMode = "admin_granted"
)

// Valid reports whether the mode is one of the known acquire modes.
func (m AcquireMode) Valid() bool {
	switch m {
	case AcquireModePurchasable, AcquireModeReward, AcquireModeAdminGranted:
		return true
	}
	return false
}

// CatalogEntry is a single obtainable head in the catalog.
// Entries are immutable after load; the registry swaps whole tables on reload.
type CatalogEntry struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Texture     string      `json:"texture,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Price       int         `json:"price"`
	Category    string      `json:"category"`
	AcquireMode AcquireMode `json:"acquire_mode"`
}

// Free reports whether acquiring the entry requires no debit.
func (e CatalogEntry) Free() bool {
	return e.AcquireMode != AcquireModePurchasable || e.Price == 0
}

// Category groups catalog entries for menu rendering.
type Category struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Texture     string `json:"texture,omitempty"`
	EntryCount  int    `json:"entry_count"`
}

// OwnershipRecord is one durable (player, entry) ownership row.
// Records are created on grant and deleted only by admin removal, never mutated.
type OwnershipRecord struct {
	PlayerID   string      `json:"player_id"`
	EntryID    string      `json:"entry_id"`
	AcquiredAt time.Time   `json:"acquired_at"`
	SourceMode AcquireMode `json:"source_mode"`
}

// Favorite marks a catalog entry a player has starred in the menu.
// Favorite state is independent of ownership.
type Favorite struct {
	PlayerID string `json:"player_id"`
	EntryID  string `json:"entry_id"`
}
