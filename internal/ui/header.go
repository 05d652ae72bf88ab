package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width    int
	producer string
	endpoint string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProducer sets the active reply producer name to display
func (h *Header) SetProducer(name string) {
	h.producer = name
}

// SetEndpoint sets the endpoint to display alongside the producer name
func (h *Header) SetEndpoint(endpoint string) {
	h.endpoint = endpoint
}

// View renders the header
func (h *Header) View() string {
	titleText := " parley"
	var rightText string
	if h.producer != "" {
		rightText = h.producer
		if h.endpoint != "" {
			rightText += " (" + h.endpoint + ")"
		}
		rightText += " "
	}

	// Pad between title and right text, measuring display cells not bytes
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background
// fading from the primary color on the left to the main background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// The producer/endpoint portion renders muted
	rightStart := -1
	if h.producer != "" {
		rightStart = strings.LastIndex(content, h.producer)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		inRight := rightStart >= 0 && i >= rightStart

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 7) // Bold for the "parley" title

		if inRight {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
