package reply

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMock_Name(t *testing.T) {
	m := NewMock()
	if got := m.Name(); got != "mock" {
		t.Errorf("Name() = %q, want %q", got, "mock")
	}
}

func TestMock_Reply_PlanGating(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantPlan bool
	}{
		{
			name:     "action and subject",
			text:     "please generate a poster for the show",
			wantPlan: true,
		},
		{
			name:     "case insensitive match",
			text:     "DESIGN me a LOGO",
			wantPlan: true,
		},
		{
			name:     "action only",
			text:     "generate something nice",
			wantPlan: false,
		},
		{
			name:     "subject only",
			text:     "I like this poster",
			wantPlan: false,
		},
		{
			name:     "neither",
			text:     "hello there",
			wantPlan: false,
		},
		{
			name:     "keyword inside larger word does not count",
			text:     "regenerated imposters",
			wantPlan: false,
		},
		{
			name:     "keywords in either order",
			text:     "a flyer is what you should make",
			wantPlan: true,
		},
	}

	m := &Mock{Delay: 0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Reply(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Reply() error = %v", err)
			}
			if got == "" {
				t.Fatal("Reply() returned empty text")
			}
			hasPlan := strings.Contains(got, "Plan:")
			if hasPlan != tt.wantPlan {
				t.Errorf("Reply(%q) plan presence = %v, want %v\nreply: %s",
					tt.text, hasPlan, tt.wantPlan, got)
			}
		})
	}
}

func TestMock_Reply_Delay(t *testing.T) {
	m := &Mock{Delay: 50 * time.Millisecond}
	start := time.Now()
	if _, err := m.Reply(context.Background(), "hi"); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Reply() returned after %v, want at least 50ms", elapsed)
	}
}

func TestMock_Reply_ContextCutsDelayShort(t *testing.T) {
	m := &Mock{Delay: 5 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	got, err := m.Reply(ctx, "generate a banner")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if got == "" {
		t.Fatal("Reply() returned empty text")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Reply() took %v, cancellation should have cut it short", elapsed)
	}
}
