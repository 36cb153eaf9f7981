// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine holds the configuration, error channel, and version
// handshake shared by every other component in this module. Every Grid,
// Gradient, Hessian, Fragility Map, Constraint Surface, and Transport
// Metric borrows a *Context for the lifetime of the object; the context
// must outlive everything created from it.
package engine

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// defaultStep is the default finite-difference bump size: 1 basis point
const defaultStep = 1e-4

// maxStep is the largest finite-difference step this engine accepts
const maxStep = 0.1

// Context carries per-analysis configuration (finite-difference step,
// thread hint) and a one-slot error channel. Concurrent use of a single
// Context from multiple goroutines is undefined; the supported pattern
// for parallel analyses is one Context per goroutine.
type Context struct {
	step       float64
	threadHint int
	lastErr    *Error
}

// NewContext returns a Context with default configuration: step = 1e-4,
// thread hint = 1
func NewContext() *Context {
	return &Context{
		step:       defaultStep,
		threadHint: 1,
	}
}

// Step returns the configured finite-difference bump size
func (ctx *Context) Step() float64 {
	if ctx == nil {
		return defaultStep
	}
	return ctx.step
}

// SetStep sets the finite-difference bump size h. h must satisfy
// 0 < h <= 0.1; on failure the previous value is left unchanged and
// ErrInvalidArgument is returned
func (ctx *Context) SetStep(h float64) error {
	if ctx == nil {
		chk.Panic("engine: SetStep called on nil Context")
	}
	if h <= 0 || h > maxStep {
		return ctx.fail(ErrInvalidArgument, "step must satisfy 0 < h <= %g; got %g", maxStep, h)
	}
	ctx.step = h
	return nil
}

// ThreadHint returns the configured thread hint (informational only;
// this engine has no internal scheduling and never launches goroutines
// on its own)
func (ctx *Context) ThreadHint() int {
	if ctx == nil {
		return 1
	}
	return ctx.threadHint
}

// SetThreadHint sets the thread hint; must be >= 1
func (ctx *Context) SetThreadHint(n int) error {
	if ctx == nil {
		chk.Panic("engine: SetThreadHint called on nil Context")
	}
	if n < 1 {
		return ctx.fail(ErrInvalidArgument, "thread hint must be >= 1; got %d", n)
	}
	ctx.threadHint = n
	return nil
}

// SetFromPrms configures step and thread hint from a named parameter
// list, mirroring the teacher's Init(ndim, pstress, prms fun.Prms) model
// configuration idiom. Recognized names are "step" and "thread-hint";
// unrecognized names are ignored. The first rejected value aborts with
// the same validation error SetStep/SetThreadHint would return.
func (ctx *Context) SetFromPrms(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "step":
			if err := ctx.SetStep(p.V); err != nil {
				return err
			}
		case "thread-hint":
			if err := ctx.SetThreadHint(int(p.V)); err != nil {
				return err
			}
		}
	}
	return nil
}

// LastError returns the last error recorded on this context, or nil if
// no operation using this context has failed (or the context is nil)
func (ctx *Context) LastError() *Error {
	if ctx == nil {
		return nil
	}
	return ctx.lastErr
}

// ClearLastError resets the error slot
func (ctx *Context) ClearLastError() {
	if ctx == nil {
		return
	}
	ctx.lastErr = nil
}

// fail records an error in the context's slot and returns it; every
// component that borrows a Context funnels its failures through here
// (or through the package-level Fail helper) so LastError stays
// meaningful even when a caller only checked a downstream aggregate
func (ctx *Context) fail(code ErrorCode, format string, args ...interface{}) error {
	e := newError(code, format, args...)
	if ctx != nil {
		ctx.lastErr = e
	}
	return e
}

// Fail is the package-level equivalent of Context.fail, for components
// that need to record+return an error on a context they borrowed
func Fail(ctx *Context, code ErrorCode, format string, args ...interface{}) error {
	return ctx.fail(code, format, args...)
}
