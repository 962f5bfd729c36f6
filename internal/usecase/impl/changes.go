// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"ecospot/internal/domain/service"
)

// publishChanges signals live feeds after a committed write.
// The write already succeeded, so failures are only logged.
func publishChanges(ctx context.Context, bus service.ChangeBus, logger *slog.Logger, topics ...string) {
	for _, topic := range topics {
		if err := bus.Publish(ctx, topic); err != nil {
			logger.Warn("Failed to publish change", slog.String("topic", topic), slog.Any("error", err))
		}
	}
}
