// Package app wires the UI components, the transcript, and the reply
// producer into the main Bubble Tea model.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parley-chat/parley/internal/chat"
	"github.com/parley-chat/parley/internal/clipboard"
	"github.com/parley-chat/parley/internal/config"
	"github.com/parley-chat/parley/internal/errors"
	"github.com/parley-chat/parley/internal/logger"
	"github.com/parley-chat/parley/internal/notification"
	"github.com/parley-chat/parley/internal/reply"
	"github.com/parley-chat/parley/internal/ui"
)

// ReplyMsg is sent when the producer finishes one reply request. Replies
// arrive in completion order, which may differ from send order.
type ReplyMsg struct {
	RequestID string // ID of the user message this reply answers
	Text      string
	Err       error
}

// ThemeWatchTickMsg drives the config-file poll that picks up theme changes
// made by other running instances.
type ThemeWatchTickMsg time.Time

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.Chat
	modal   *ui.Modal

	transcript *chat.Transcript
	producer   reply.Producer
	watcher    *config.Watcher

	width   int
	height  int
	pending int // In-flight reply requests
}

// New creates a new app model
func New(cfg *config.Config, producer reply.Producer, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:     cfg,
		version:    version,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		chat:       ui.NewChat(),
		modal:      ui.NewModal(),
		transcript: chat.NewTranscript(),
		producer:   producer,
		watcher:    config.NewWatcher(cfg.FilePath(), cfg.GetTheme()),
	}

	m.header.SetProducer(producer.Name())
	if h, ok := producer.(*reply.HTTP); ok {
		m.header.SetEndpoint(h.Endpoint())
	}
	m.chat.SetFocused(true)

	return m
}

// Transcript exposes the message store, mainly for tests.
func (m *Model) Transcript() *chat.Transcript {
	return m.transcript
}

// Pending returns the number of in-flight reply requests.
func (m *Model) Pending() int {
	return m.pending
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return themeWatchTick()
}

// themeWatchTick schedules the next config-file poll
func themeWatchTick() tea.Cmd {
	return tea.Tick(config.WatchInterval, func(t time.Time) tea.Msg {
		return ThemeWatchTickMsg(t)
	})
}

// requestReply asks the producer for a reply off the main loop. The returned
// command blocks in its own goroutine, so slow producers never stall the UI.
func (m *Model) requestReply(requestID, text string) tea.Cmd {
	producer := m.producer
	return func() tea.Msg {
		reply, err := producer.Reply(context.Background(), text)
		return ReplyMsg{RequestID: requestID, Text: reply, Err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case ThemeWatchTickMsg:
		if theme, changed := m.watcher.Check(); changed {
			logger.Info("App: adopting theme %q from another instance", theme)
			ui.SetThemeByName(theme)
			m.config.SetTheme(theme)
			m.refreshChat()
		}
		return m, themeWatchTick()

	case ReplyMsg:
		return m.handleReply(msg)

	case ui.StopwatchTickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleReply appends the agent bubble (or failure bubble) for one completed
// request and fires the desktop notification when enabled.
func (m *Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}
	m.chat.SetPending(m.pending)

	logger.Debug("App: reply for request %s, pending=%d", msg.RequestID, m.pending)

	if msg.Err != nil {
		logger.Warn("App: reply for request %s failed: %v", msg.RequestID, msg.Err)
		m.transcript.AppendNew(chat.RoleAgent, chat.WarningMarker+" "+errors.UserMessage(msg.Err))
	} else {
		m.transcript.AppendNew(chat.RoleAgent, msg.Text)
	}
	m.refreshChat()

	if m.config.GetNotificationsEnabled() {
		failed := msg.Err != nil
		return m, func() tea.Msg {
			if failed {
				notification.ReplyFailed()
			} else {
				notification.ReplyReceived()
			}
			return nil
		}
	}
	return m, nil
}

// handleKey processes key presses when no modal is open
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit:
		return m, tea.Quit

	case keySend:
		return m.sendMessage()

	case keyTheme:
		m.modal.Show(ui.NewThemeState(ui.CurrentThemeName()))
		return m, nil

	case keySettings:
		m.modal.Show(ui.NewSettingsState(m.config.GetEndpoint(), m.config.GetNotificationsEnabled()))
		return m, nil

	case keyCopyReply:
		return m.copyLastReply()
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// sendMessage submits the composer text. An empty or whitespace-only
// composer is a no-op: nothing is appended and the input is left alone.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	input := m.chat.GetInput()
	if input == "" {
		return m, nil
	}

	logger.Debug("App: sending message, len=%d, pending=%d", len(input), m.pending)

	userMsg := m.transcript.AppendNew(chat.RoleUser, input)
	m.chat.ClearInput()
	m.refreshChat()

	m.pending++
	m.chat.SetPending(m.pending)

	return m, tea.Batch(
		m.requestReply(userMsg.ID, input),
		ui.StopwatchTick(),
	)
}

// copyLastReply puts the most recent successful agent reply on the clipboard
func (m *Model) copyLastReply() (tea.Model, tea.Cmd) {
	last, ok := m.transcript.LastAgent()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteText(last.Text); err != nil {
		logger.Warn("App: clipboard copy failed: %v", err)
	}
	return m, nil
}

// refreshChat pushes the current transcript into the chat panel. The panel
// re-renders and snaps to the bottom exactly once per call.
func (m *Model) refreshChat() {
	m.chat.SetMessages(m.transcript.Messages())
}

func (m *Model) updateSizes() {
	vctx := ui.GetViewContext()
	vctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(vctx.TerminalWidth)
	m.footer.SetWidth(vctx.TerminalWidth)
	m.chat.SetSize(vctx.ChatWidth, vctx.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	_, hasReply := m.transcript.LastAgent()
	m.footer.SetContext(m.modal.IsVisible(), hasReply)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.chat.View(),
		m.footer.View(),
	)

	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(view)
	return v
}
