package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownEntry    = "unknown catalog entry"
	ErrMsgUnknownCategory = "unknown category"

	// Ownership errors
	ErrMsgAlreadyOwned = "entry already owned"
	ErrMsgNotOwned     = "entry not owned"
	ErrMsgConflict     = "ownership conflict"

	// Economy errors
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgGatewayTimeout     = "economy gateway timeout"
	ErrMsgCompensationFailed = "compensation failed"

	// Infrastructure errors
	ErrMsgStoreUnavailable = "store unavailable"
	ErrMsgTxClosed         = "tx is closed"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Domain rejections are normal control flow: AlreadyOwned and InsufficientFunds
// are expected outcomes, not faults. Infrastructure errors (StoreUnavailable,
// GatewayTimeout) are retryable by the caller.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrUnknownEntry    = errors.New(ErrMsgUnknownEntry)
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)

	// Ownership errors
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)

	// ErrConflict is the store's duplicate-key rejection. It is internal: the
	// engine compensates and translates it to ErrAlreadyOwned before it reaches
	// a caller.
	ErrConflict = errors.New(ErrMsgConflict)

	// Economy errors
	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrGatewayTimeout     = errors.New(ErrMsgGatewayTimeout)
	ErrCompensationFailed = errors.New(ErrMsgCompensationFailed)

	// Infrastructure errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
