package ui

import (
	"strings"
	"testing"
)

func TestFooter_View_DefaultBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	view := stripANSI(footer.View())

	for _, want := range []string{"enter", "send", "ctrl+t", "theme", "ctrl+c", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer missing %q: %q", want, view)
		}
	}

	// Copy shortcut is hidden until a reply exists
	if strings.Contains(view, "ctrl+y") {
		t.Errorf("footer shows copy shortcut with no replies: %q", view)
	}
}

func TestFooter_View_WithReplies(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, true)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "ctrl+y") {
		t.Errorf("footer missing copy shortcut with replies present: %q", view)
	}
}

func TestFooter_View_ModalOpen(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "confirm") || !strings.Contains(view, "cancel") {
		t.Errorf("footer missing modal bindings: %q", view)
	}
	if strings.Contains(view, "ctrl+t") {
		t.Errorf("footer shows chat bindings while modal open: %q", view)
	}
}
