// Package errors provides error handling for tempex.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details on user-facing errors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrEmptyExpression) {
//	    // handle empty input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across tempex.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrEmptyExpression indicates the parse entry point received empty or
	// blank text. This is the one malformed-input condition surfaced to
	// callers; everything else is no-match control flow.
	ErrEmptyExpression = New("empty temporal expression")

	// ErrNoMatch indicates no rule or parser recognized the input.
	ErrNoMatch = New("no temporal interpretation")

	// ErrDepthExceeded indicates recursive sub-parsing hit the configured
	// depth limit. Treated as no-match by every caller.
	ErrDepthExceeded = New("sub-parse recursion limit exceeded")

	// ErrInvalidAnchor indicates an anchor instant could not be parsed.
	ErrInvalidAnchor = New("invalid anchor instant")
)

// IsNoMatch checks if an error is or wraps ErrNoMatch or ErrDepthExceeded,
// both of which mean "this interpretation didn't pan out" rather than
// failure.
func IsNoMatch(err error) bool {
	return err != nil && IsAny(err, ErrNoMatch, ErrDepthExceeded)
}
