package state

import (
	"fmt"
	"sync"
	"time"
)

// Poll describes one successful poll cycle.
type Poll struct {
	SourceSize int64
	Samples    int
	Rebuilt    bool
}

// Snapshot represents the latest poll health available to the consumer.
type Snapshot struct {
	SourceSize          int64
	Samples             int
	Rebuilds            int
	LastRebuild         time.Time
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed poll cycles
}

// IsStale returns true when the source has been unreadable for multiple
// polls, meaning the displayed windows may be out of date.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of a poll cycle. When err is non-nil the
// previous data is kept but the error is recorded for visibility.
func (s *Store) Update(poll *Poll, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = now
		s.snapshot.ConsecutiveFailures++
		return
	}

	if poll != nil {
		s.snapshot.SourceSize = poll.SourceSize
		if poll.Rebuilt {
			s.snapshot.Samples = poll.Samples
			s.snapshot.Rebuilds++
			s.snapshot.LastRebuild = now
		}
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = now
	s.snapshot.ConsecutiveFailures = 0
}

// Reset clears the snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
