// Package notification delivers push messages to mobile devices.
package notification

import (
	"context"
	"log/slog"

	"ecospot/config"
	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewPushSender returns the Firebase sender when credentials are configured.
// Without them it falls back to a sender that only logs, for local development.
func NewPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase is not configured, push messages will only be logged")

		return &logPushSender{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send delivers one notification to one device token.
func (s *firebaseService) Send(ctx context.Context, msg *entity.PushMessage) (string, error) {
	messageID, err := s.client.Send(ctx, toFirebaseMessage(msg))
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", errors.Wrap(service.ErrInvalidPushToken, err.Error())
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	return messageID, nil
}

func toFirebaseMessage(msg *entity.PushMessage) *messaging.Message {
	return &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
}

// logPushSender writes messages to the log instead of a device.
type logPushSender struct {
	logger *slog.Logger
}

func (s *logPushSender) Send(ctx context.Context, msg *entity.PushMessage) (string, error) {
	messageID := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "Push message",
		slog.String("message_id", messageID),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data),
	)

	return messageID, nil
}
