// Package app wires configuration, the cursor store, the log reader and the
// classifier into a single hook invocation.
//
// # Overview
//
// Run is the composition root. Each call handles exactly one request from
// the host:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Resolve project root and paths
//	       ├─────> hook.DecodeRequest() Read the host request from stdin
//	       ├─────> Store.Load()         Previous cursor, if any
//	       ├─────> logtail.ReadSince()  Lines newer than the cursor
//	       ├─────> Store.Save(now)      Always, before classifying
//	       ├─────> FirstError()         Noise first, then errors
//	       └─────> hook.WriteResponse() Nothing, or a block decision
//
// When the request says the agent is already continuing after one of our
// blocks, Run saves the cursor and proceeds without scanning.
//
// # Reporting
//
// A block carries at most MaxExcerptLines of the delta (150 by default). If
// lines were dropped, a marker naming the log file is placed first. The
// excerpt is wrapped in a fixed message asking the agent to fix the errors
// before finishing.
//
// # Error Handling
//
// Fatal (returned from Run, process exits 1):
//   - Invalid config file
//   - Malformed hook request (nothing is saved)
//   - Log read failures other than a missing file
//   - Cursor save failures
//
// Not errors:
//   - Missing log file (empty delta, cursor still advances)
//   - Corrupt cursor file (cold start, logged at warn)
//
// # Other Entry Points
//
// Scan, Status and Reset back the CLI subcommands used by humans. Scan never
// writes the cursor.
package app
