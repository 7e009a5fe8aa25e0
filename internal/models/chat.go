package models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// MaxChatHistoryMessages caps the persisted conversation; the oldest
// messages are dropped once the cap is exceeded.
const MaxChatHistoryMessages = 200

type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// TrimChatHistory keeps the newest messages up to the cap, preserving order.
func TrimChatHistory(messages []ChatMessage) []ChatMessage {
	if len(messages) <= MaxChatHistoryMessages {
		return messages
	}
	return messages[len(messages)-MaxChatHistoryMessages:]
}
