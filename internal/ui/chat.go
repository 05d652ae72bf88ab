package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parley-chat/parley/internal/chat"
	"github.com/parley-chat/parley/internal/keys"
	"github.com/parley-chat/parley/internal/logger"
)

// StopwatchTickMsg is sent to update the waiting stopwatch display
type StopwatchTickMsg time.Time

// waitingVerbs are playful status messages that cycle while a reply is pending
var waitingVerbs = []string{
	"Thinking",
	"Pondering",
	"Considering",
	"Sketching",
	"Drafting",
	"Composing",
	"Mulling",
	"Percolating",
}

// randomWaitingVerb returns a random verb from the list
func randomWaitingVerb() string {
	return waitingVerbs[rand.Intn(len(waitingVerbs))]
}

// Chat represents the conversation panel: scrollable transcript plus composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	messages []chat.Message

	pending       int       // Number of in-flight replies
	waitStartTime time.Time // When the oldest pending reply started
	waitingVerb   string    // Random verb to display while waiting

	renderedCount int // Message count at the last snap-to-bottom
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		messages: []chat.Message{},
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	vctx := GetViewContext()

	// Transcript panel height (excluding the composer which is separate)
	chatPanelHeight := height - InputTotalHeight

	innerWidth := vctx.InnerWidth(width)
	viewportHeight := vctx.InnerHeight(chatPanelHeight)

	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Composer width accounts for its own border AND padding
	inputInnerWidth := vctx.InnerWidth(width) - InputPaddingWidth
	c.input.SetWidth(inputInnerWidth)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the rendered transcript and snaps the viewport to the
// bottom. Called once per transcript change, so the scroll follows exactly
// one jump per appended message.
func (c *Chat) SetMessages(messages []chat.Message) {
	c.messages = messages
	c.updateContent()
}

// SetPending sets the number of in-flight replies. The waiting indicator
// shows while the count is positive.
func (c *Chat) SetPending(n int) {
	if n > 0 && c.pending == 0 {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomWaitingVerb()
	}
	c.pending = n
	c.updateContent()
}

// IsWaiting returns whether any reply is pending
func (c *Chat) IsWaiting() bool {
	return c.pending > 0
}

// GetInput returns the current composer text, trimmed
func (c *Chat) GetInput() string {
	val := strings.TrimSpace(c.input.Value())
	logger.Debug("Chat.GetInput: value=%q, len=%d", val, len(val))
	return val
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// renderEmptyTranscript renders the placeholder before the first message
func renderEmptyTranscript() string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Render("Say something to get started...")
}

func (c *Chat) updateContent() {
	var sb strings.Builder

	chatWidth := c.viewport.Width()
	if chatWidth <= 0 {
		chatWidth = DefaultWrapWidth
	}

	if len(c.messages) == 0 && c.pending == 0 {
		sb.WriteString(renderEmptyTranscript())
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(renderBubble(msg, chatWidth))
		}

		if c.pending > 0 {
			if len(c.messages) > 0 {
				sb.WriteString("\n\n")
			}
			elapsed := time.Since(c.waitStartTime)
			stopwatchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
			sb.WriteString(BubbleAgentLabelStyle.Render("Agent"))
			sb.WriteString("\n")
			sb.WriteString(StatusLoadingStyle.Render(c.waitingVerb + "... "))
			sb.WriteString(stopwatchStyle.Render(formatElapsed(elapsed)))
		}
	}

	// Snap to the bottom exactly once per appended message. Redraws with an
	// unchanged transcript (stopwatch ticks, theme changes, resizes) keep
	// the reader's scroll position unless they were already at the bottom.
	wasAtBottom := c.viewport.AtBottom()
	c.viewport.SetContent(sb.String())
	if len(c.messages) != c.renderedCount {
		c.renderedCount = len(c.messages)
		c.viewport.GotoBottom()
	} else if wasAtBottom {
		c.viewport.GotoBottom()
	}
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case StopwatchTickMsg:
		if c.pending > 0 {
			c.updateContent()
			cmds = append(cmds, StopwatchTick())
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		// Check if this is a scroll key before sending to input
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD, keys.Home, keys.End:
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			case keys.ShiftEnter, keys.AltEnter:
				// Plain enter submits, so newlines need a modifier
				c.input.InsertString("\n")
				return c, nil
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Don't pass other key events to viewport when input is focused
		// This prevents spacebar/arrows from scrolling while typing
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	// Update viewport for scrolling (non-key events, or when not focused)
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel: transcript above, composer below
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight

	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
