package request

import "strings"

// WebhookRequest is the inbound message payload posted by the messaging
// channel. Twilio sends it form-encoded; JSON is accepted for manual testing
// and other channels.
type WebhookRequest struct {
	From string `form:"From" json:"From"`
	Body string `form:"Body" json:"Body"`
}

// SenderID normalizes the channel-qualified sender into the session key:
// any channel prefix up to the separator and a leading "+" are stripped, so
// "whatsapp:+573001234567" becomes "573001234567".
func (r WebhookRequest) SenderID() string {
	from := strings.TrimSpace(r.From)
	if _, after, found := strings.Cut(from, ":"); found {
		from = after
	}
	return strings.TrimPrefix(from, "+")
}
