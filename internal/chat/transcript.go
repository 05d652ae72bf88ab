package chat

import "sync"

// Transcript is the ordered, append-only message store for one run.
// Appends can arrive from reply goroutines, so access is mutex-guarded.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{messages: []Message{}}
}

// Append adds a message to the end of the transcript and returns it.
func (t *Transcript) Append(msg Message) Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
	return msg
}

// AppendNew creates a message from role and text, appends it, and returns it.
func (t *Transcript) AppendNew(role Role, text string) Message {
	return t.Append(NewMessage(role, text))
}

// Messages returns a copy of the message slice in insertion order.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs := make([]Message, len(t.messages))
	copy(msgs, t.messages)
	return msgs
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Last returns the most recent message, or a zero Message and false when
// the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// LastAgent returns the most recent non-error agent message, or false when
// there is none. Used by the copy-reply shortcut.
func (t *Transcript) LastAgent() (Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Role == RoleAgent && !t.messages[i].IsError() {
			return t.messages[i], true
		}
	}
	return Message{}, false
}
