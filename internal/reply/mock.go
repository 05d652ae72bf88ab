package reply

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultMockDelay is the artificial pause before a canned reply is
// returned, simulating a round trip to a real agent.
const DefaultMockDelay = 400 * time.Millisecond

// actionPattern and subjectPattern are matched independently against the
// user's message. A reply only includes a plan when both match.
var (
	actionPattern  = regexp.MustCompile(`(?i)\b(generate|create|make|design|build|draw)\b`)
	subjectPattern = regexp.MustCompile(`(?i)\b(poster|flyer|banner|logo|invite|card)\b`)
)

// planTemplate is the fixed plan appended when the message names both an
// action and a subject. The verbs are the matched action and subject.
const planTemplate = `Plan:
1. Clarify what the %s should communicate
2. Sketch a layout and pick a palette
3. %s a first draft
4. Revise based on your feedback`

// Mock is the canned, network-free reply producer. It never fails.
type Mock struct {
	// Delay is the pause before each reply. Defaults to DefaultMockDelay
	// when constructed via NewMock; tests set it to zero.
	Delay time.Duration
}

// NewMock creates a mock producer with the default delay.
func NewMock() *Mock {
	return &Mock{Delay: DefaultMockDelay}
}

// Name implements Producer.
func (m *Mock) Name() string { return "mock" }

// Reply implements Producer. It acknowledges the message and, when the text
// contains both an action and a subject keyword, appends the plan template.
// The artificial delay is interruptible by ctx but the result is always
// success.
func (m *Mock) Reply(ctx context.Context, text string) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}

	action := actionPattern.FindString(text)
	subject := subjectPattern.FindString(text)

	var sb strings.Builder
	sb.WriteString("Understood. Looking at your request now.")

	if action != "" && subject != "" {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf(planTemplate,
			strings.ToLower(subject),
			capitalize(strings.ToLower(action))))
	}

	return sb.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
