// Package state provides thread-safe poll health for the pinmon monitor.
//
// # Overview
//
// The monitor's background poller is the only writer; the dashboard reads a
// copy on its own refresh tick to show whether the displayed windows are
// current. Measurement data itself does not live here. It travels to the
// consumer as complete batches over a channel (see package monitor).
//
//	Producer (poller):             Consumer (dashboard):
//	┌────────────────┐            ┌──────────────────┐
//	│ stat source    │            │                  │
//	│ rebuild store  │            │                  │
//	│      ↓         │            │                  │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│      ↓         │  (mutex)   │      ↓           │
//	│  sleep...      │            │  render header   │
//	└────────────────┘            └──────────────────┘
//
// # Update Semantics
//
//	// Successful cycle: record size, rebuild counters when data changed
//	store.Update(&state.Poll{SourceSize: n, Samples: total, Rebuilt: true}, nil)
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failed cycle: keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// IsStale reports two or more consecutive failures. A single failed stat
// while a writer holds the file is common and not worth flagging.
//
// # Concurrency Model
//
// Update takes the write lock, Snapshot the read lock. The lock is held only
// while copying a few scalars; file I/O happens outside it. Snapshot wraps
// the stored error so callers never share the poller's error value.
//
// The zero Store is ready to use.
package state
