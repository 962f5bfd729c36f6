package pubsub

import (
	"encoding/json"
	"strconv"

	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the body Google Pub/Sub posts to push endpoints.
// The local publisher produces the same shape so the worker has one decoder.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeLocationChanged serializes the message and derives the routing attributes.
func encodeLocationChanged(msg *service.LocationChangedMessage) ([]byte, map[string]string, error) {
	if msg == nil || msg.Event == nil {
		return nil, nil, errors.New("location changed message has no event")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttributeEventType: constants.EventTypeLocationChanged,
		constants.AttributeUserID:    msg.Event.UserID.String(),
		constants.AttributeVersion:   strconv.FormatInt(msg.Event.Version, 10),
	}
	if msg.RequestID != "" {
		attributes[constants.AttributeRequestID] = msg.RequestID
	}

	return data, attributes, nil
}

// DecodeLocationChanged parses a message produced by any publisher in this package.
func DecodeLocationChanged(data []byte) (*service.LocationChangedMessage, error) {
	var msg service.LocationChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to decode location changed message")
	}
	if msg.Event == nil {
		return nil, errors.New("location changed message has no event")
	}

	return &msg, nil
}
