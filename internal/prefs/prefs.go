// Package prefs handles pinmon user preferences persistence.
// Preferences are stored in ~/.config/pinmon/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/monitor"
)

// Prefs holds user preferences for pinmon.
type Prefs struct {
	Theme   string  `toml:"theme"`
	Session Session `toml:"session"`
}

// Session is the last monitoring session that started successfully.
type Session struct {
	Source     string   `toml:"source"`
	WindowSize int      `toml:"window_size"`
	MaxValue   float64  `toml:"max_value"`
	Categories []string `toml:"categories"`
}

const (
	defaultPrefsPath = "~/.config/pinmon/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// SessionFrom records the parts of s worth restoring next time.
func SessionFrom(s monitor.Settings) Session {
	return Session{
		Source:     s.SourcePath,
		WindowSize: s.WindowSize,
		MaxValue:   s.MaxValue,
		Categories: category.Labels(s.Categories),
	}
}

// Empty reports whether no session has been saved.
func (s Session) Empty() bool {
	return strings.TrimSpace(s.Source) == "" && s.WindowSize == 0 && s.MaxValue == 0 && len(s.Categories) == 0
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	prefs := Prefs{Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme}, nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.Session.Source = strings.TrimSpace(prefs.Session.Source)
	if prefs.Session.WindowSize < 0 {
		prefs.Session.WindowSize = 0
	}
	if prefs.Session.MaxValue < 0 {
		prefs.Session.MaxValue = 0
	}
	// Drop labels a newer or older build does not know.
	known := prefs.Session.Categories[:0]
	for _, label := range prefs.Session.Categories {
		if _, ok := category.Lookup(label); ok {
			known = append(known, strings.TrimSpace(label))
		}
	}
	prefs.Session.Categories = known

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
