package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/pkg/logger"
)

// Start starts the background services (River workers, periodic cleanup).
func (a *Application) Start(ctx context.Context) error {
	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("River client started, audit jobs will now be consumed")
	}
	return nil
}

// Shutdown gracefully shuts down all application components. Worker pools
// drain before the river client stops so in-flight async hand-offs still
// reach the queue.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.Pools != nil {
		a.Pools.Shutdown()
	}

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop river client", zap.Error(err))
		}
		logger.Info("River client stopped")
	}

	if a.DB != nil {
		a.DB.Close()
	}
}
