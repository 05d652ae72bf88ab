package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/parley-chat/parley/internal/chat"
)

func TestNewChat(t *testing.T) {
	c := NewChat()
	if c == nil {
		t.Fatal("NewChat() returned nil")
	}
	if c.IsWaiting() {
		t.Error("new chat should not be waiting")
	}
}

func TestChat_InputRoundTrip(t *testing.T) {
	c := NewChat()

	c.SetInput("  hello there  ")
	if got := c.GetInput(); got != "hello there" {
		t.Errorf("GetInput() = %q, want trimmed value", got)
	}

	c.ClearInput()
	if got := c.GetInput(); got != "" {
		t.Errorf("GetInput() after clear = %q", got)
	}
}

func TestChat_SetPending(t *testing.T) {
	c := NewChat()

	c.SetPending(1)
	if !c.IsWaiting() {
		t.Error("IsWaiting() = false with a pending reply")
	}

	c.SetPending(2)
	if !c.IsWaiting() {
		t.Error("IsWaiting() = false with two pending replies")
	}

	c.SetPending(0)
	if c.IsWaiting() {
		t.Error("IsWaiting() = true with nothing pending")
	}
}

func TestChat_View_ShowsMessages(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 30)
	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleUser, "make me a poster"),
		chat.NewMessage(chat.RoleAgent, "working on it"),
	})

	view := stripANSI(c.View())
	if !strings.Contains(view, "make me a poster") {
		t.Errorf("view missing user message: %q", view)
	}
	if !strings.Contains(view, "working on it") {
		t.Errorf("view missing agent message: %q", view)
	}
}

func TestChat_View_EmptyPlaceholder(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 30)

	view := stripANSI(c.View())
	if !strings.Contains(view, "Say something") {
		t.Errorf("view missing empty-transcript placeholder: %q", view)
	}
}

func TestChat_ScrollSnapsOncePerMessage(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 20)

	var msgs []chat.Message
	for i := 0; i < 30; i++ {
		msgs = append(msgs, chat.NewMessage(chat.RoleUser, fmt.Sprintf("message %d", i)))
	}
	c.SetMessages(msgs)
	if !c.viewport.AtBottom() {
		t.Fatal("viewport should snap to bottom on new messages")
	}

	// Reader scrolls up while a reply is pending
	c.SetPending(1)
	c.viewport.SetYOffset(0)

	c.Update(StopwatchTickMsg(time.Now()))
	if c.viewport.AtBottom() {
		t.Error("stopwatch tick moved the scroll position with no new message")
	}

	// Theme refreshes re-render the same transcript; scroll stays put
	c.SetMessages(msgs)
	if c.viewport.AtBottom() {
		t.Error("re-render without a count change moved the scroll position")
	}

	msgs = append(msgs, chat.NewMessage(chat.RoleAgent, "done"))
	c.SetMessages(msgs)
	if !c.viewport.AtBottom() {
		t.Error("viewport did not snap to bottom for an appended message")
	}
}

func TestChat_Focus(t *testing.T) {
	c := NewChat()

	c.SetFocused(true)
	if !c.IsFocused() {
		t.Error("IsFocused() = false after SetFocused(true)")
	}

	c.SetFocused(false)
	if c.IsFocused() {
		t.Error("IsFocused() = true after SetFocused(false)")
	}
}
