package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width      int
	bindings   []KeyBinding
	modalOpen  bool // Whether a modal is showing
	hasReplies bool // Whether any reply has arrived (enables copy)
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "shift+enter", Desc: "newline"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "ctrl+e", Desc: "settings"},
			{Key: "ctrl+y", Desc: "copy reply"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(modalOpen, hasReplies bool) {
	f.modalOpen = modalOpen
	f.hasReplies = hasReplies
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string

	if f.modalOpen {
		modalBindings := []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
		for _, b := range modalBindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
	} else {
		for _, b := range f.bindings {
			// Copy only makes sense once a reply exists
			if b.Key == "ctrl+y" && !f.hasReplies {
				continue
			}
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
