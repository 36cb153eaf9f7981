// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/io"

// ErrorCode classifies a failure returned by any public operation. Zero
// (Success) means the operation completed; every other value is paired
// with a human-readable message in the owning context's error slot.
type ErrorCode int

// error code values; mirrors the 10-value taxonomy of the source engine
const (
	Success ErrorCode = iota
	ErrNullPointer
	ErrInvalidArgument
	ErrOutOfMemory
	ErrDimensionMismatch
	ErrSingularMatrix
	ErrNumericalInstability
	ErrPricingEngineFailed
	ErrConstraintViolation
	ErrNotInitialized
)

// String returns the canonical name of the error code
func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "success"
	case ErrNullPointer:
		return "null-pointer"
	case ErrInvalidArgument:
		return "invalid-argument"
	case ErrOutOfMemory:
		return "out-of-memory"
	case ErrDimensionMismatch:
		return "dimension-mismatch"
	case ErrSingularMatrix:
		return "singular-matrix"
	case ErrNumericalInstability:
		return "numerical-instability"
	case ErrPricingEngineFailed:
		return "pricing-engine-failed"
	case ErrConstraintViolation:
		return "constraint-violation"
	case ErrNotInitialized:
		return "not-initialized"
	}
	return "unknown"
}

// maxMessageLen caps an error message at 255 bytes, matching the source
// engine's fixed-size message buffer
const maxMessageLen = 255

// Error is the concrete error type returned by the fallible operations
// in this module that report through a Context; Code classifies the
// failure, Message is a short human-readable description. eigen.Jacobi
// and a cancelled grid.Grid.MapValues return plain errors instead.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return io.Sf("%s: %s", e.Code, e.Message)
}

// newError builds an *Error, truncating the message to maxMessageLen bytes
func newError(code ErrorCode, format string, args ...interface{}) *Error {
	msg := io.Sf(format, args...)
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	return &Error{Code: code, Message: msg}
}
