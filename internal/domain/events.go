package domain

// Event type constants used for event bus subscriptions and metrics tracking.
// Event types follow the pattern: <entity>.<action> (e.g., "head.acquired")
const (
	EventTypeHeadAcquired    = "head.acquired"
	EventTypeHeadRemoved     = "head.removed"
	EventTypeCatalogReloaded = "catalog.reloaded"
)

// HeadAcquiredPayload is the typed payload for head.acquired events
type HeadAcquiredPayload struct {
	PlayerID   string `json:"player_id"`
	EntryID    string `json:"entry_id"`
	Category   string `json:"category"`
	Price      int    `json:"price"`
	Charged    int    `json:"charged"`
	SourceMode string `json:"source_mode"`
	Timestamp  int64  `json:"timestamp"`
}

// HeadRemovedPayload is the typed payload for head.removed events
type HeadRemovedPayload struct {
	PlayerID  string `json:"player_id"`
	EntryID   string `json:"entry_id"`
	Timestamp int64  `json:"timestamp"`
}

// CatalogReloadedPayload is the typed payload for catalog.reloaded events
type CatalogReloadedPayload struct {
	Entries    int   `json:"entries"`
	Categories int   `json:"categories"`
	Timestamp  int64 `json:"timestamp"`
}
