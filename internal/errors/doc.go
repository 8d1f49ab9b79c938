// Package errors provides error handling conventions for the mcpack CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, mcpackerrors.ErrUnknownPattern) {
//	    // handle unknown pattern case
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown pattern, invalid flag, etc.)
//   - ExitSystem (2): System-related error (missing tool, failed install, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := mcpackerrors.NewUserError(mcpackerrors.ErrUnknownPattern, "Run: mcpack list")
//	var exitErr *mcpackerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
