// Package ui provides the user interface components for the Parley TUI.
//
// # Overview
//
// The ui package implements the visual components of Parley using the Bubble
// Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Conversation (scrollable viewport)                │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Composer (3-line textarea)                          │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title and the active reply producer.
// Uses a gradient background with the primary color.
//
// Footer: Shows the keyboard shortcuts.
//
// Chat: The conversation panel showing the message transcript and composer.
// User messages render as right-aligned bubbles, agent replies as
// left-aligned bubbles, and reply failures as warning bubbles. The viewport
// snaps to the bottom whenever a message is added.
//
// Modal: Popup dialogs:
//   - ThemeState: pick between the dark and light themes
//   - SettingsState: edit the endpoint and notification preferences
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerated when
// the theme changes. Two themes are built in: dark (the default) and light.
package ui
