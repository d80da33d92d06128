// Package config resolves the project root and the paths logcheck works with.
//
// # Overview
//
// The host passes the project root in CLAUDE_PROJECT_DIR. When it is unset
// the current working directory is used. Everything else has a default
// relative to that root, so no configuration file is required.
//
// # Default Values
//
//   - Config file: <project>/.claude/hooks/logcheck.toml
//   - Watched log: <project>/.blitz/metro.log
//   - Cursor file: <project>/.claude/hooks/.last-stop-hook-ts
//   - Cold start tail: 100 lines
//   - Excerpt cap: 150 lines
//   - Diagnostics level: warn
//
// # TOML Format
//
//	log_path = ".blitz/metro.log"
//	state_path = ".claude/hooks/.last-stop-hook-ts"
//	tail_lines = 100
//	max_excerpt_lines = 150
//	log_level = "warn"
//
// All fields are optional. Relative paths resolve against the project root
// and a leading ~ expands to the home directory. Empty or non-positive values
// fall back to defaults.
//
// The error and noise pattern sets are not configurable; they live in the
// classify package.
//
// # Error Handling
//
// A missing config file is not an error. An unreadable file or invalid TOML
// is returned and aborts the invocation before any state is touched.
package config
