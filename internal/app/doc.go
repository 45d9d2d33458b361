// Package app is the composition root for pinmon.
//
// # Overview
//
// Run wires configuration, saved preferences, the file logger, the monitor
// and the dashboard, then blocks until the user quits:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          TOML config (defaults when missing)
//	       ├─────> prefs.Load()           theme and last session
//	       ├─────> Resolve()              flags > config > last session > defaults
//	       ├─────> logging.NewFileLogger() JSON log file, never the terminal
//	       ├─────> monitor.New()          ChannelNotifier into a 1-slot channel
//	       └─────> ui.Run()               dashboard (blocks)
//
// When a source path is known the dashboard starts monitoring immediately.
// Otherwise it opens idle and reports the missing source when the user
// presses start.
//
// Snapshot shares Prepare and Resolve with Run but performs a single
// monitor.Load, which backs the `pinmon snapshot` command.
//
// # Error Handling
//
// Config parse errors, unknown category labels and logger setup failures
// are returned from Run before the terminal is taken over. Once the
// dashboard runs, monitor errors surface in the UI instead.
package app
