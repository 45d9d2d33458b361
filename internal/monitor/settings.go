package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/window"
)

const (
	DefaultWindowSize    = 10
	DefaultMaxValue      = 20.0
	DefaultPollInterval  = time.Second
	DefaultBackoffFactor = 5
)

// Settings is everything the monitor needs to follow one source file.
type Settings struct {
	SourcePath    string
	WindowSize    int
	MaxValue      float64 // upper bound of the value axis, passed through to consumers
	Categories    []category.Key
	PollInterval  time.Duration
	BackoffFactor int  // poll interval multiplier after a failed cycle
	Watch         bool // wake the poller on filesystem events
}

// Validate rejects categories outside the enumeration.
func (s Settings) Validate() error {
	for _, k := range s.Categories {
		if !k.Known() {
			return fmt.Errorf("%w: key %d", ErrUnknownCategory, int(k))
		}
	}
	return nil
}

func (s Settings) normalized() Settings {
	s.SourcePath = strings.TrimSpace(s.SourcePath)
	if s.WindowSize < window.MinSize {
		s.WindowSize = window.MinSize
	}
	if s.MaxValue <= 0 {
		s.MaxValue = DefaultMaxValue
	}
	if s.PollInterval <= 0 {
		s.PollInterval = DefaultPollInterval
	}
	if s.BackoffFactor < 1 {
		s.BackoffFactor = DefaultBackoffFactor
	}
	s.Categories = append([]category.Key(nil), s.Categories...)
	return s
}

func (s Settings) backoff() time.Duration {
	return s.PollInterval * time.Duration(s.BackoffFactor)
}
