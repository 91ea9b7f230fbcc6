package telegram

// Update is the inbound webhook envelope. Updates without a message (or
// without message text) are acknowledged and ignored.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is one chat message inside an update.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID int64 `json:"id"`
}

// WebhookInfo describes the webhook currently registered with the Bot API.
type WebhookInfo struct {
	URL            string `json:"url"`
	PendingUpdates int    `json:"pending_update_count"`
	LastErrorDate  int64  `json:"last_error_date"`
	LastErrorMsg   string `json:"last_error_message"`
}
