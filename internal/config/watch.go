package config

import (
	"os"
	"time"
)

// WatchInterval is how often the running app polls the config file for
// changes written by another parley instance.
const WatchInterval = 2 * time.Second

// Watcher detects theme changes written to the config file by a different
// process. It tracks the file's modification time and only re-reads the
// file when that changes.
type Watcher struct {
	path     string
	lastMod  time.Time
	lastSeen string
}

// NewWatcher creates a watcher for the given config file path, seeded with
// the currently applied theme so an unchanged file reports nothing.
func NewWatcher(path, currentTheme string) *Watcher {
	w := &Watcher{path: path, lastSeen: currentTheme}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
	}
	return w
}

// Check re-reads the config file if it changed on disk since the last call.
// It returns the new theme name and true when another instance switched
// themes, and ("", false) otherwise. Errors reading or parsing the file are
// swallowed; a broken config file should not take down a running session.
func (w *Watcher) Check() (string, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		return "", false
	}
	if !info.ModTime().After(w.lastMod) {
		return "", false
	}
	w.lastMod = info.ModTime()

	cfg, err := LoadFrom(w.path)
	if err != nil {
		return "", false
	}

	theme := cfg.GetTheme()
	if theme == "" || theme == w.lastSeen {
		return "", false
	}
	w.lastSeen = theme
	return theme, true
}

// NoteApplied records a theme change made by this instance so the watcher
// does not report our own write back to us.
func (w *Watcher) NoteApplied(theme string) {
	w.lastSeen = theme
	if info, err := os.Stat(w.path); err == nil {
		w.lastMod = info.ModTime()
	}
}
