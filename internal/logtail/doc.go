// Package logtail reads the watched log file incrementally.
//
// # Overview
//
// The log is append-only and its lines optionally start with a bracketed UTC
// timestamp:
//
//	[2026-01-28T09:01:19.217Z] level=error disk full
//	    at Object.<anonymous> (index.js:3:9)
//
// A timestamped line opens a record. Lines without a timestamp (stack frames,
// wrapped output) belong to the record opened by the nearest line above them.
//
// # Reading
//
// The package exposes three functions:
//
//  1. ExtractTimestamp: parse the bracketed timestamp out of a line
//  2. Read: return the last N lines using a ring buffer
//  3. ReadSince: return the records newer than a cursor
//
// ReadSince keeps a single capture flag while scanning the file from the
// start. A record whose header timestamp is strictly after the cursor is
// captured along with its continuation lines; anything at or before the
// cursor is skipped. Two records that share the exact cursor instant are both
// skipped, which is a known precision limit of using a timestamp rather than
// a byte offset as the cursor. The timestamp cursor in exchange survives the
// log being truncated or rotated between runs.
//
// When there is no cursor yet, ReadSince falls back to Read with the caller's
// tail size so a first run only looks at recent output.
//
// # Error Handling
//
// A missing log file yields no lines and no error. Timestamps that do not
// parse as a calendar time are treated as absent, so the line behaves as a
// continuation line. Invalid UTF-8 is replaced rather than rejected. Open and
// read failures are returned wrapped.
package logtail
