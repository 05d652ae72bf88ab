// Package reply produces agent responses to user messages. Two producers
// exist: a canned generator for offline use and an HTTP client for a local
// agent endpoint. They implement the same interface and are selected at
// startup, never composed.
package reply

import "context"

// Producer turns a user message into an agent reply. Implementations block
// until the reply is ready (or the context is done) and are safe for
// concurrent use; the app runs each call in its own goroutine and appends
// results in completion order.
type Producer interface {
	// Reply returns the agent's response to text. A non-nil error is
	// surfaced to the user as a warning bubble.
	Reply(ctx context.Context, text string) (string, error)

	// Name identifies the producer for the header bar and logs.
	Name() string
}
