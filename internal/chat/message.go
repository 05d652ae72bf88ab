// Package chat holds the in-memory conversation model: message records and
// the append-only transcript they live in. Messages are created once and
// never mutated; the transcript only ever grows for the lifetime of a run.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is a single chat message. IDs are unique within a run and
// insertion order is display order.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

// NewMessage creates a message with a fresh ID and the current timestamp.
func NewMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// IsError reports whether this message is a failure bubble. Failures are
// regular agent messages whose text starts with the warning marker.
func (m Message) IsError() bool {
	return m.Role == RoleAgent && len(m.Text) > 0 && hasWarningPrefix(m.Text)
}

// WarningMarker prefixes reply-failure messages.
const WarningMarker = "⚠"

func hasWarningPrefix(s string) bool {
	return len(s) >= len(WarningMarker) && s[:len(WarningMarker)] == WarningMarker
}
