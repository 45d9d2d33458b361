package monitor

import (
	"context"
	"time"

	"github.com/five82/pinmon/internal/source"
	"github.com/five82/pinmon/internal/state"
)

// poll runs cycles until the run is stopped or ctx is cancelled. Exactly one
// poll goroutine exists per run.
func (m *Monitor) poll(ctx context.Context, r *run) {
	defer m.finish(r)

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	var wake <-chan struct{}
	if r.settings.Watch {
		w, err := source.Watch(watchCtx, r.settings.SourcePath, m.logger)
		if err != nil {
			m.logger.Warn("file watch unavailable, polling only", "path", r.settings.SourcePath, "error", err)
		} else {
			wake = w
		}
	}

	for {
		if r.stopped.Load() {
			return
		}
		delay, failed := m.cycle(r)

		// Filesystem events may cut a normal sleep short but not a backoff.
		events := wake
		if failed {
			events = nil
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-r.stop:
			timer.Stop()
			return
		case <-timer.C:
		case _, ok := <-events:
			timer.Stop()
			if !ok {
				wake = nil
			}
		}
	}
}

// cycle checks the source once and rebuilds when its size changed. It
// returns how long to sleep before the next cycle.
func (m *Monitor) cycle(r *run) (delay time.Duration, failed bool) {
	s := r.settings

	size, err := source.Size(s.SourcePath)
	if err != nil {
		m.fail(s, err)
		return s.backoff(), true
	}
	if !r.detector.Changed(size) {
		m.health.Update(&state.Poll{SourceSize: size}, nil)
		return s.PollInterval, false
	}

	batch, err := read(s, size)
	if err != nil {
		m.fail(s, err)
		return s.backoff(), true
	}
	if m.afterRead != nil {
		m.afterRead()
	}
	if r.stopped.Load() {
		// Stopped mid-cycle; the consumer no longer expects batches.
		return s.PollInterval, false
	}

	prev, _ := r.detector.Last()
	r.detector.Observe(size)
	m.health.Update(&state.Poll{SourceSize: size, Samples: batch.Total, Rebuilt: true}, nil)
	m.logger.Debug("source rebuilt",
		"path", s.SourcePath,
		"previous_size", prev,
		"size", size,
		"samples", batch.Total,
		"rejected", batch.Rejected,
	)
	m.notify(batch)
	return s.PollInterval, false
}

func (m *Monitor) fail(s Settings, err error) {
	m.health.Update(nil, err)
	m.logger.Warn("poll failed", "path", s.SourcePath, "error", err, "retry_in", s.backoff())
	if m.onError != nil {
		m.onError(err)
	}
}
