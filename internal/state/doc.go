// Package state persists the scan cursor, the only state logcheck keeps
// between invocations.
//
// # Overview
//
// The cursor is the wall-clock time at which the previous invocation finished
// scanning the log. The next invocation reports only records whose header
// timestamp is strictly after it.
//
// # Core Types
//
// Store:
//   - Load/Save interface over the cursor
//   - Single writer, single reader; the host never runs two invocations at once
//
// FileStore:
//   - Plain text file holding one timestamp, e.g. 2026-01-28T09:01:19.217000Z
//   - Save creates missing parent directories and overwrites unconditionally
//   - Clear removes the file (used by the reset command)
//
// MemoryStore:
//   - In-process Store for tests
//
// # Error Handling
//
// Load never fails: a missing or corrupt cursor file means "no cursor" and the
// caller falls back to a cold start. Save failures are returned, since
// reporting success without recording the scan would replay or hide errors
// on the next run.
package state
