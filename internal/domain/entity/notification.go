package entity

// PushMessage is a single push notification addressed to a device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
