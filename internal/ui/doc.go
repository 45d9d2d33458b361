// Package ui implements the pinmon dashboard with Bubble Tea.
//
// # Overview
//
// The dashboard is the consumer of package monitor. It never reads the
// measurement file itself: batches arrive over a channel filled by
// monitor.ChannelNotifier, and a one-second tick reads poll health for the
// header.
//
//	monitor poller ──Batch──→ chan ──waitForBatch──→ Update(batchMsg)
//	                                                      │
//	tick ──→ Controller.Health()/State() ──────────→ renderHeader
//
// # Layout
//
//   - Header: run state, sample and rejected counts, last update, source
//     path and a warning when polls fail (red once the source is stale)
//   - Command bar: key hints plus the current window size and max value
//   - Panels: one per selected category, in category display order. Each
//     shows "TestCount range of N", the visible ordinal range, a braille
//     line chart clamped to [0, max] and summary stats. A category with no
//     samples shows "No data for <label>" with the range [1, N].
//
// # Controls
//
// Changing the window size, max value or category selection while running
// restarts the monitor with the new settings; while idle it only
// reconfigures. Start failures are shown in a blocking notice. Every
// successful start is remembered in prefs so the next launch resumes the
// same session.
//
// # Files
//
//   - app.go: Model, Update, commands and Run
//   - chart.go: drawille line charts and category panels
//   - header.go: header, command bar and error notice
//   - help.go: help overlay with the category legend
//   - keys.go: key bindings (bubbles/key, rendered with bubbles/help)
//   - theme.go, style_helpers.go: lipgloss themes and background helpers
package ui
