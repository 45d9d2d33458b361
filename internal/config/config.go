package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/monitor"
)

// Config is the parsed pinmon config file. Session fields (Source,
// WindowSize, MaxValue, Categories) stay zero when the file omits them so
// callers can layer flags and saved preferences on top; Settings applies
// the remaining defaults.
type Config struct {
	Source        string
	WindowSize    int
	MaxValue      float64
	Categories    []string
	PollInterval  time.Duration
	BackoffFactor int
	Watch         bool
	LogFile       string
	LogLevel      string
}

const (
	defaultConfigPath = "~/.config/pinmon/config.toml"
	defaultLogFile    = "~/.local/state/pinmon/pinmon.log"
	defaultLogLevel   = "info"
)

// DefaultCategories is the selection used when nothing else chooses one.
var DefaultCategories = []string{"0%"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval:  monitor.DefaultPollInterval,
		BackoffFactor: monitor.DefaultBackoffFactor,
		Watch:         true,
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the pinmon config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source        string   `toml:"source"`
		WindowSize    int      `toml:"window_size"`
		MaxValue      float64  `toml:"max_value"`
		Categories    []string `toml:"categories"`
		PollInterval  string   `toml:"poll_interval"`
		BackoffFactor int      `toml:"backoff_factor"`
		Watch         *bool    `toml:"watch"`
		LogFile       string   `toml:"log_file"`
		LogLevel      string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if src := strings.TrimSpace(raw.Source); src != "" {
		cfg.Source = mustExpand(src)
	}
	if raw.WindowSize > 0 {
		cfg.WindowSize = raw.WindowSize
	}
	if raw.MaxValue > 0 {
		cfg.MaxValue = raw.MaxValue
	}
	for _, label := range raw.Categories {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cfg.Categories = append(cfg.Categories, trimmed)
		}
	}
	if interval := strings.TrimSpace(raw.PollInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		if d > 0 {
			cfg.PollInterval = d
		}
	}
	if raw.BackoffFactor > 0 {
		cfg.BackoffFactor = raw.BackoffFactor
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return cfg, nil
}

// Settings converts the config into monitor settings. Category labels are
// resolved here, so an unknown label is reported before anything starts.
func (c Config) Settings() (monitor.Settings, error) {
	labels := c.Categories
	if len(labels) == 0 {
		labels = DefaultCategories
	}
	keys, err := category.ParseLabels(labels)
	if err != nil {
		return monitor.Settings{}, err
	}

	// Zero means unset. Negative sizes pass through for the monitor to floor.
	window := c.WindowSize
	if window == 0 {
		window = monitor.DefaultWindowSize
	}

	return monitor.Settings{
		SourcePath:    c.Source,
		WindowSize:    window,
		MaxValue:      c.MaxValue,
		Categories:    keys,
		PollInterval:  c.PollInterval,
		BackoffFactor: c.BackoffFactor,
		Watch:         c.Watch,
	}, nil
}

// ExpandPath resolves a user supplied path: tilde expansion, then absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
