package bootstrap

// DirPermission is the standard permission for creating directories
const DirPermission = 0755

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Log messages for catalog sync
const (
	LogMsgSyncingCatalog = "Syncing catalog from JSON config..."
	LogMsgCatalogSynced  = "Catalog synced successfully"

	ErrMsgFailedLoadCatalog = "failed to load catalog config"
	ErrMsgInvalidCatalog    = "invalid catalog config"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
