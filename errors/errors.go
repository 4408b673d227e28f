// Package errors provides error handling for cgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for the person choosing a house style
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := node.Render(sink, cfg); err != nil {
//	    return errors.Wrap(err, "failed to render header")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnsupportedStyle) {
//	    // pick another brace style
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
	Mark         = crdb.Mark
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
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for rendering and configuration.
// Use these with errors.Is(); Wrap them to add context while preserving the type.
var (
	// ErrUnsupportedStyle indicates a brace style that has no layout defined
	ErrUnsupportedStyle = New("unsupported brace style")

	// ErrSinkWrite indicates the output destination rejected a write
	ErrSinkWrite = New("output write failed")

	// ErrInvalidConfig indicates a house-style configuration that cannot be used
	ErrInvalidConfig = New("invalid configuration")
)

// NewUnsupportedStyle returns an ErrUnsupportedStyle naming the style that was requested.
func NewUnsupportedStyle(style string) error {
	err := Wrapf(ErrUnsupportedStyle, "brace style %q", style)
	return WithHint(err, "supported brace styles: allman, gnu, knr, horstmann, pico, none")
}

// WrapSinkWrite marks a writer failure as ErrSinkWrite while keeping the cause reachable.
func WrapSinkWrite(err error) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, "write rendered text"), ErrSinkWrite)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}

// IsUnsupportedStyleError checks if an error is or wraps ErrUnsupportedStyle
func IsUnsupportedStyleError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedStyle)
}

// IsSinkWriteError checks if an error is or wraps ErrSinkWrite
func IsSinkWriteError(err error) bool {
	return err != nil && Is(err, ErrSinkWrite)
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}
