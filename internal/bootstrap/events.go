package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openheads/headstore/internal/config"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/metrics"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher, and registers the metrics collector on the bus. Returns the
// publisher, which services should use as their Bus so that publish failures
// retry in the background instead of failing operations.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	// Ensure dead-letter directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(publisher); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return publisher, nil
}
