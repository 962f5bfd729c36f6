package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"ecospot/config"
	"ecospot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFirebaseMessage(t *testing.T) {
	msg := &entity.PushMessage{
		Token: "device-token",
		Title: "Recycling spot nearby!",
		Body:  "You are near: Glass bin",
		Data:  map[string]string{"spot_ids": "a,b"},
	}

	fm := toFirebaseMessage(msg)
	assert.Equal(t, "device-token", fm.Token)
	assert.Equal(t, "Recycling spot nearby!", fm.Notification.Title)
	assert.Equal(t, "You are near: Glass bin", fm.Notification.Body)
	assert.Equal(t, msg.Data, fm.Data)
	assert.Equal(t, "high", fm.Android.Priority)
}

func TestNewPushSender_FallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sender, err := NewPushSender(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	messageID, err := sender.Send(context.Background(), &entity.PushMessage{Token: "t", Title: "hello"})
	require.NoError(t, err)
	assert.Contains(t, messageID, "log-")
	assert.Contains(t, buf.String(), "hello")
}
