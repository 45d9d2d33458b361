package monitor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/five82/pinmon/internal/source"
	"github.com/five82/pinmon/internal/state"
)

// State is the monitor lifecycle state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Notify receives every batch the monitor produces. It is called from the
// goroutine that called Start for the initial batch and from the poller
// goroutine afterwards, never concurrently. It must not call back into the
// Monitor.
type Notify func(Batch)

// Option customises a Monitor.
type Option func(*Monitor)

// WithLogger sets the logger for poll failures and rebuilds.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithErrorHandler registers a callback for poll-cycle errors. Errors are
// reported, never returned: the poller keeps running.
func WithErrorHandler(fn func(error)) Option {
	return func(m *Monitor) { m.onError = fn }
}

// Monitor follows one measurement file and delivers windowed batches.
type Monitor struct {
	notify  Notify
	onError func(error)
	logger  *slog.Logger
	health  state.Store

	afterRead func() // runs between a cycle's read and its stop check; nil outside tests

	startMu sync.Mutex // serialises Start

	mu         sync.Mutex
	settings   Settings
	configured bool
	active     *run // nil while idle
	last       *run // most recent run, possibly still finishing
}

// run is one Start..Stop lifetime of the poller.
type run struct {
	settings Settings
	detector source.Detector
	stop     chan struct{}
	done     chan struct{}
	stopped  atomic.Bool
	once     sync.Once
}

func (r *run) halt() {
	r.once.Do(func() {
		r.stopped.Store(true)
		close(r.stop)
	})
}

// New returns an idle, unconfigured Monitor.
func New(notify Notify, opts ...Option) *Monitor {
	if notify == nil {
		notify = func(Batch) {}
	}
	m := &Monitor{
		notify: notify,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configure replaces the settings used by the next Start.
func (m *Monitor) Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return ErrAlreadyRunning
	}
	m.settings = s.normalized()
	m.configured = true
	return nil
}

// Settings returns a copy of the current settings.
func (m *Monitor) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.normalized()
}

// Start loads the source synchronously, delivers the initial batch and
// launches the poller. On error the monitor stays idle.
func (m *Monitor) Start(ctx context.Context) error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	m.mu.Lock()
	s, configured, active, prev := m.settings, m.configured, m.active, m.last
	m.mu.Unlock()

	if !configured || s.SourcePath == "" {
		return ErrNotConfigured
	}
	if active != nil {
		return ErrAlreadyRunning
	}
	// A stopped poller may still be finishing its last cycle.
	if prev != nil {
		<-prev.done
	}

	batch, err := Load(s)
	if err != nil {
		m.logger.Error("initial load failed", "path", s.SourcePath, "error", err)
		return err
	}

	r := &run{
		settings: s,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	r.detector.Observe(batch.SourceSize)

	m.mu.Lock()
	m.active = r
	m.last = r
	m.mu.Unlock()

	m.health.Reset()
	m.health.Update(&state.Poll{SourceSize: batch.SourceSize, Samples: batch.Total, Rebuilt: true}, nil)
	m.logger.Info("monitoring started",
		"path", s.SourcePath,
		"window", s.WindowSize,
		"categories", len(s.Categories),
		"samples", batch.Total,
	)

	m.notify(batch)
	go m.poll(ctx, r)
	return nil
}

// Stop clears the running flag. The poller notices at its next iteration;
// Stop does not wait for it.
func (m *Monitor) Stop() {
	m.mu.Lock()
	r := m.active
	m.active = nil
	m.mu.Unlock()
	if r == nil {
		return
	}
	r.halt()
	m.logger.Info("monitoring stopped", "path", r.settings.SourcePath)
}

// Wait blocks until the most recent poller has exited.
func (m *Monitor) Wait() {
	m.mu.Lock()
	r := m.last
	m.mu.Unlock()
	if r != nil {
		<-r.done
	}
}

// State reports whether a poller is active.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return Running
	}
	return Idle
}

// Health returns the poller's latest health snapshot.
func (m *Monitor) Health() state.Snapshot {
	return m.health.Snapshot()
}

// finish marks r as exited.
func (m *Monitor) finish(r *run) {
	m.mu.Lock()
	if m.active == r {
		m.active = nil
	}
	m.mu.Unlock()
	close(r.done)
}
