package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/parley-chat/parley/internal/keys"
	"github.com/parley-chat/parley/internal/logger"
	"github.com/parley-chat/parley/internal/ui"
)

// handleModalKey routes modal key events to the appropriate handler based on
// modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.ThemeState:
		return m.handleThemeModal(key, msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	}

	// Unknown modal state: escape closes
	if key == keys.Escape {
		m.modal.Hide()
	}
	return m, nil
}

// handleThemeModal applies a theme selection or cancels
func (m *Model) handleThemeModal(key string, msg tea.KeyPressMsg, s *ui.ThemeState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		name := s.GetSelectedTheme()
		ui.SetTheme(name)
		m.config.SetTheme(string(name))
		if err := m.config.Save(); err != nil {
			logger.Error("App: saving theme failed: %v", err)
		}
		m.watcher.NoteApplied(string(name))
		m.modal.Hide()
		m.refreshChat()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// handleSettingsModal saves or cancels the settings form
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, s *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		if err := s.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.config.SetEndpoint(s.Endpoint)
		m.config.SetNotificationsEnabled(s.Notifications)
		if err := m.config.Save(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		// Endpoint changes take effect on next start
		m.modal.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}
