package domain

import "time"

type ChatSource string

const (
	ChatSourceCacheFast    ChatSource = "cache-fast"
	ChatSourceCacheDurable ChatSource = "cache-durable"
	ChatSourceGenerative   ChatSource = "generative"
	// ChatSourcePending marks a speculative exchange still waiting for the
	// backend's answer.
	ChatSourcePending ChatSource = "pending"
)

// NormalizeChatSource maps the backend's source identifiers onto the
// client-side names. Unknown values pass through unchanged.
func NormalizeChatSource(raw string) ChatSource {
	switch raw {
	case "redis":
		return ChatSourceCacheFast
	case "pg":
		return ChatSourceCacheDurable
	case "openai":
		return ChatSourceGenerative
	default:
		return ChatSource(raw)
	}
}

type ChatExchange struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	Response  string     `json:"response"`
	Source    ChatSource `json:"source"`
	Timestamp time.Time  `json:"timestamp"`
}

func (e ChatExchange) RecordID() string { return e.ID }

// ChatDraft is the payload of a chat create intent.
type ChatDraft struct {
	Message string `json:"message"`
}
