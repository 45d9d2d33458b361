// Package source reads the measurement file and decides when it has changed.
//
// # Overview
//
// The measurement file is append-only in normal operation: a test rig writes
// one "key,value" line per test event. This package provides the three
// primitives the monitor needs to follow it:
//
//  1. ReadLines: read the whole file, one string per line
//  2. Size + Detector: compare the current byte length with the last one
//  3. Watch: an fsnotify wake-up so a poll can run before its timer fires
//
// # Change Detection
//
// Detector compares byte lengths only. Growth and shrinkage (truncation,
// rotation to a smaller file) both count as a change and trigger a full
// re-read. An in-place rewrite that keeps the length identical is missed;
// this is a known limitation of the length heuristic.
//
// The monitor calls Observe only after a successful rebuild, so a read that
// fails after a size change is retried on the next poll.
//
// # Reading
//
// ReadLines reads through a 64KB bufio.Reader and caps a line at 1MB. A
// longer line (binary junk, a writer that never emits a newline) is consumed
// to its end and replaced by OversizedLine, which the parser rejects like
// any other malformed line. Unlike a log viewer it keeps every line: the
// category store needs the complete history to compute ordinals.
//
// # Watching
//
// Watch observes the parent directory rather than the file itself so that
// replace-by-rename writers are still seen. Events for other files in the
// directory are ignored. Signals are coalesced into a one-slot channel; the
// size comparison still decides whether anything is re-read, so spurious
// signals are harmless.
//
// # Error Handling
//
// ReadLines and Size wrap every error ("open source", "read source",
// "stat source"). A missing file is an error here; the monitor decides
// whether it is fatal (at start) or transient (while polling).
package source
