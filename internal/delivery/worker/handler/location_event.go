// Package handler turns broker deliveries of location events into proximity checks.
package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"
	"ecospot/internal/infra/pubsub"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the broker should redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// LocationEventHandlerParams holds dependencies for LocationEventHandler, injected by Fx.
type LocationEventHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// LocationEventHandler runs the proximity check for one delivered location event.
type LocationEventHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewLocationEventHandler is the constructor for LocationEventHandler.
func NewLocationEventHandler(params LocationEventHandlerParams) *LocationEventHandler {
	return &LocationEventHandler{proximityUC: params.ProximityUC, logger: params.Logger}
}

// Handle decodes data and processes the event. Malformed payloads are
// permanent failures; only errors wrapped as retryable warrant redelivery.
func (h *LocationEventHandler) Handle(ctx context.Context, data []byte, attributes map[string]string) error {
	msg, err := pubsub.DecodeLocationChanged(data)
	if err != nil {
		return err
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, attributes, msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	event := msg.Event
	reqLogger.Debug("[Worker] Processing location event",
		slog.String("user_id", event.UserID.String()),
		slog.Int64("version", event.Version),
	)

	result, err := h.proximityUC.HandleLocationChange(ctx, event)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if result.Skipped != "" {
		reqLogger.Debug("[Worker] No notification sent",
			slog.String("user_id", event.UserID.String()),
			slog.String("reason", string(result.Skipped)),
		)

		return nil
	}

	reqLogger.Info("[Worker] Nearby spots notified",
		slog.String("user_id", event.UserID.String()),
		slog.Int("spot_count", len(result.Notified)),
		slog.String("message_id", result.MessageID),
		slog.Bool("ledger_synced", result.LedgerSync),
	)

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func extractRequestID(ctx context.Context, attributes map[string]string, msg *service.LocationChangedMessage) string {
	if requestID := attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}
	if msg.RequestID != "" {
		return msg.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
