// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the finite-difference gradient (Jacobian) and
// Hessian operators: central differences over the grid package's
// multilinear interpolation, plus a direct-from-callback escape hatch
// that bypasses the grid entirely.
package calc

// Stencil selects the finite-difference formula used by the
// direct-from-callback analyses (calc.GradientDirect, calc.HessianDirect).
// The grid-backed analyses always use the central-difference stencil
// over grid.Interpolate, per spec: using a fixed relative bump on the
// interpolated field would alias against the piecewise-linear
// reconstruction, so only the direct-from-callback mode exposes a choice.
type Stencil int

const (
	// StencilCentral is the default: central differences, 2nd-order accurate
	StencilCentral Stencil = iota
	// StencilForward is a 1st-order forward difference
	StencilForward
	// StencilFivePoint is a 4th-order accurate five-point central stencil
	StencilFivePoint
)
