package service

import (
	"context"

	"ecospot/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidPushToken is returned when the messaging provider rejects a token as unregistered.
var ErrInvalidPushToken = errors.New("push token is not registered")

// PushSender delivers push notifications to device tokens.
type PushSender interface {
	// Send delivers a single message and returns the provider message id.
	Send(ctx context.Context, msg *entity.PushMessage) (string, error)
}
