// Package logging provides slog-based logging for the mcpack CLI.
//
// The package wraps log/slog with a TTY-aware text handler that colorizes
// output when the destination supports it, a JSON handler for machine
// consumption, and a MultiHandler for writing to several destinations at
// once (e.g. stderr plus a log file).
//
// Color output honors the NO_COLOR convention (https://no-color.org) and
// is disabled for non-terminal writers and TERM=dumb.
package logging
