package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parley-chat/parley/internal/errors"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != "" {
		t.Errorf("GetTheme() = %q, want empty default", cfg.GetTheme())
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("GetNotificationsEnabled() = true, want false default")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.SetTheme("light")
	cfg.SetEndpoint("http://localhost:9000/chat")
	cfg.SetNotificationsEnabled(true)
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() after save error = %v", err)
	}
	if loaded.GetTheme() != "light" {
		t.Errorf("GetTheme() = %q, want %q", loaded.GetTheme(), "light")
	}
	if loaded.GetEndpoint() != "http://localhost:9000/chat" {
		t.Errorf("GetEndpoint() = %q, want saved value", loaded.GetEndpoint())
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("GetNotificationsEnabled() = false, want true")
	}
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() error = nil, want parse error")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty defaults", Config{}, false},
		{"dark theme", Config{Theme: "dark"}, false},
		{"light theme", Config{Theme: "light"}, false},
		{"unknown theme", Config{Theme: "solarized"}, true},
		{"valid endpoint", Config{Endpoint: "http://127.0.0.1:8000/chat"}, false},
		{"relative endpoint", Config{Endpoint: "/chat"}, true},
		{"garbage endpoint", Config{Endpoint: "not a url"}, true},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWatcher_DetectsExternalThemeChange(t *testing.T) {
	path := testConfigPath(t)

	cfg, _ := LoadFrom(path)
	cfg.SetTheme("dark")
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(path, "dark")

	// No change yet.
	if theme, changed := w.Check(); changed {
		t.Errorf("Check() = (%q, true) on unchanged file", theme)
	}

	// Another instance writes a new theme. Bump the mtime explicitly so the
	// test does not depend on filesystem timestamp resolution.
	other, _ := LoadFrom(path)
	other.SetTheme("light")
	if err := other.Save(); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	theme, changed := w.Check()
	if !changed {
		t.Fatal("Check() = false after external theme change")
	}
	if theme != "light" {
		t.Errorf("Check() theme = %q, want %q", theme, "light")
	}

	// Same theme again reports nothing.
	if _, changed := w.Check(); changed {
		t.Error("Check() = true with no further change")
	}
}

func TestWatcher_IgnoresOwnWrite(t *testing.T) {
	path := testConfigPath(t)

	cfg, _ := LoadFrom(path)
	cfg.SetTheme("dark")
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(path, "dark")

	cfg.SetTheme("light")
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	w.NoteApplied("light")

	if theme, changed := w.Check(); changed {
		t.Errorf("Check() = (%q, true) after NoteApplied", theme)
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope.json"), "dark")
	if theme, changed := w.Check(); changed {
		t.Errorf("Check() = (%q, true) for missing file", theme)
	}
}
