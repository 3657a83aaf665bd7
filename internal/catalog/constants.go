package catalog

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the catalog configuration file
	ConfigFileName = "catalog.json"

	// SchemaPath is the JSON schema the catalog config is validated against
	SchemaPath = "configs/schemas/catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog config: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoEntriesDefined = "no entries defined"
)

// Database operation error messages
const (
	ErrMsgReplaceEntriesFailed = "failed to replace catalog entries: %w"
	ErrMsgFetchEntriesFailed   = "failed to fetch catalog entries: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded   = "Catalog config loaded"
	LogMsgCatalogSynced   = "Catalog synced to database"
	LogMsgCatalogReloaded = "Catalog registry reloaded"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtEntryAtIndexEmpty    = "%w: entry at index %d has empty id"
	ErrFmtEntryDuplicate       = "%w: '%s'"
	ErrFmtEntryEmptyDisplay    = "%w: entry '%s' has empty display_name"
	ErrFmtEntryNegativePrice   = "%w: entry '%s' has negative price"
	ErrFmtEntryBadAcquireMode  = "%w: entry '%s' has unknown acquire_mode '%s'"
	ErrFmtEntryUnknownCategory = "%w: entry '%s' references undefined category '%s'"
	ErrFmtCategoryEmptyName    = "%w: category at index %d has empty name"
	ErrFmtCategoryDuplicate    = "%w: duplicate category '%s'"
)
