package shop

// ==================== Log Messages ====================

const (
	LogMsgAcquireCalled       = "Acquire called"
	LogMsgAdminGrantCalled    = "AdminGrant called"
	LogMsgAdminRemoveCalled   = "AdminRemove called"
	LogMsgReloadCalled        = "ReloadCatalog called"
	LogMsgHeadGranted         = "Head granted"
	LogMsgHeadRemoved         = "Head removed"
	LogMsgCatalogReloaded     = "Catalog reloaded"
	LogMsgDebitRefunded       = "Debit refunded after failed grant"
	LogMsgCompensationFailed  = "CompensationFailed: refund could not be delivered"
	LogMsgEventPublishFailed  = "Failed to publish event"
	LogMsgOwnershipCacheMiss  = "Ownership cache miss, loading from store"
	LogMsgLockAcquireTimedOut = "Timed out waiting for player lock"
)

// ==================== Error Messages ====================

const (
	ErrMsgAcquireLockFailed   = "failed to acquire player lock: %w"
	ErrMsgLoadOwnershipFailed = "failed to load ownership: %w"
	ErrMsgDebitFailed         = "failed to debit player: %w"
	ErrMsgGrantFailed         = "failed to record grant: %w"
	ErrMsgRemoveFailed        = "failed to remove head: %w"
	ErrMsgBalanceFailed       = "failed to fetch balance: %w"
	ErrMsgFavoriteFailed      = "failed to update favorite: %w"
	ErrMsgListFavoritesFailed = "failed to list favorites: %w"
	ErrMsgLoadCatalogFailed   = "failed to load catalog config: %w"
	ErrMsgSyncCatalogFailed   = "failed to sync catalog: %w"
	ErrMsgEntryAdminOnly      = "entry can only be granted by an admin"
)
