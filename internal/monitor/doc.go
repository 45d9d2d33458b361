// Package monitor follows a measurement file and delivers per-category
// sliding windows to a consumer.
//
// # Overview
//
// A Monitor owns the lifecycle Idle → Running → Idle. Start performs one
// synchronous full load so the consumer has data immediately, then launches
// a single background poller. Each poll cycle stats the file, and when its
// size changed re-reads the whole file, rebuilds the category store and
// hands the consumer a fresh Batch of windows.
//
//	┌──────────────┐
//	│ Configure()  │ settings for the next Start
//	└──────┬───────┘
//	       │
//	┌──────▼───────┐  ErrNotConfigured / ErrAlreadyRunning / *LoadError
//	│   Start()    │──────────────────────────────────────────────→ stays Idle
//	└──────┬───────┘
//	       │ initial Batch → Notify
//	       │
//	┌──────▼────────────────────────────────────────┐
//	│ poller goroutine                              │
//	│  ├─> source.Size()      stat                  │
//	│  ├─> Detector.Changed() length differs?       │
//	│  ├─> source.ReadLines() + series.Rebuild()    │
//	│  ├─> window.Select()    per selected category │
//	│  └─> Notify(Batch)                            │
//	│  sleep PollInterval (×BackoffFactor on error) │
//	└───────────────────────────────────────────────┘
//
// # Concurrency
//
// Batches cross from the poller to the consumer by value. Every slice in a
// Batch is freshly allocated, so nothing the consumer holds is mutated
// afterwards. ChannelNotifier adapts Notify to a buffered channel with
// latest-wins semantics, which suits event loops such as bubbletea that
// pull messages from a command.
//
// Poll health (last error, consecutive failures) is published through a
// state.Store and read with Health.
//
// # Stopping
//
// Stop is cooperative. It clears the running flag and wakes a sleeping
// poller; a cycle already in progress finishes but its batch is dropped. No
// new cycle starts after Stop. Stop returns immediately; Wait blocks until
// the poller goroutine has exited. A later Start waits for the previous
// poller itself, so two pollers never run at once.
//
// # Error Handling
//
// Errors at Start are returned: ErrNotConfigured when no source is set,
// ErrAlreadyRunning on a second Start, and *LoadError (matching ErrLoad)
// when the file cannot be read. Errors during polling are logged, passed to
// the WithErrorHandler callback and recorded in Health, then the poller backs
// off and keeps going. Malformed lines are never errors; a Batch only
// carries the Rejected count.
//
// # Change Detection
//
// Only the byte length is compared. Growth and truncation both trigger a
// rebuild; an equal-length rewrite is missed. The observed length is
// committed after a successful rebuild so a failed read is retried.
//
// With Settings.Watch the poller also listens for fsnotify events on the
// file, which cut the normal sleep short. The length comparison still
// decides whether anything is re-read.
package monitor
