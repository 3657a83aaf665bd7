package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInvalidRequest   = "Invalid request body"

	// Path parameter error messages
	ErrMsgMissingPlayerID = "Missing player id"
	ErrMsgMissingEntryID  = "Missing entry id"

	// Catalog error messages
	ErrMsgListCatalogFailed    = "Failed to list catalog"
	ErrMsgListCategoriesFailed = "Failed to list categories"

	// Ownership error messages
	ErrMsgListOwnedFailed = "Failed to list owned heads"
	ErrMsgAcquireFailed   = "Failed to acquire head"
	ErrMsgGrantFailed     = "Failed to grant head"
	ErrMsgRemoveFailed    = "Failed to remove head"

	// Favorite error messages
	ErrMsgAddFavoriteFailed    = "Failed to add favorite"
	ErrMsgRemoveFavoriteFailed = "Failed to remove favorite"
	ErrMsgListFavoritesFailed  = "Failed to list favorites"

	// Economy error messages
	ErrMsgGetBalanceFailed = "Failed to get balance"

	// Admin error messages
	ErrMsgReloadCatalogFailed = "Failed to reload catalog"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgHeadGrantedSuccess     = "Head granted successfully"
	MsgHeadRemovedSuccess     = "Head removed successfully"
	MsgFavoriteAddedSuccess   = "Favorite added successfully"
	MsgFavoriteRemovedSuccess = "Favorite removed successfully"
	MsgCatalogReloadedSuccess = "Catalog reloaded successfully"
)
