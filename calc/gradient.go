// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"

	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/grid"
)

// zeroNormTol is the threshold below which the gradient's unit direction
// is reported as the zero vector rather than a normalized (and
// numerically unstable) direction
const zeroNormTol = 1e-15

// Gradient is a stateful first-order sensitivity object: invalid until
// Compute(p) succeeds, then reusable across further Compute calls at new
// points. Holds a back-link to its Grid and borrows the Context it was
// created with.
type Gradient struct {
	ctx      *engine.Context
	g        *grid.Grid
	dim      int
	point    []float64
	fAtPoint float64
	partials []float64
	valid    bool
}

// NewGradient returns a Gradient bound to g that reports failures on ctx
func NewGradient(ctx *engine.Context, g *grid.Grid) *Gradient {
	return &Gradient{ctx: ctx, g: g}
}

// Compute evaluates the central-difference gradient of the tabulated
// field at p, using grid.Interpolate (never raw grid values) so the
// probe is well-defined off-node, and per-axis grid spacing as the bump
// size — this is load-bearing: a fixed relative bump would alias against
// the piecewise-linear reconstruction.
func (o *Gradient) Compute(p []float64) error {
	o.valid = false
	D := o.g.NumDimensions()
	if len(p) != D {
		return engine.Fail(o.ctx, engine.ErrDimensionMismatch,
			"gradient: point has %d coordinates, grid has %d dimensions", len(p), D)
	}
	if !o.g.Populated() {
		return engine.Fail(o.ctx, engine.ErrNotInitialized,
			"gradient: grid has no tabulated field; call MapValues first")
	}

	dims := o.g.Dimensions()
	partials := make([]float64, D)
	probe := make([]float64, D)
	copy(probe, p)

	for d := 0; d < D; d++ {
		h := dims[d].Spacing()

		copy(probe, p)
		probe[d] = p[d] + h
		fPlus := o.g.Interpolate(probe)

		copy(probe, p)
		probe[d] = p[d] - h
		fMinus := o.g.Interpolate(probe)

		partials[d] = (fPlus - fMinus) / (2 * h)
	}

	o.dim = D
	o.point = append([]float64(nil), p...)
	o.fAtPoint = o.g.Interpolate(p)
	o.partials = partials
	o.valid = true
	return nil
}

// Valid reports whether Compute has succeeded and not since been invalidated
func (o *Gradient) Valid() bool {
	return o.valid
}

// Point returns the point of the last successful Compute, or nil
func (o *Gradient) Point() []float64 {
	if !o.valid {
		return nil
	}
	return o.point
}

// ValueAtPoint returns the cached f(p) from the last successful Compute,
// or 0 if invalid
func (o *Gradient) ValueAtPoint() float64 {
	if !o.valid {
		return 0
	}
	return o.fAtPoint
}

// Partial returns d/dx_d evaluated at the last Compute'd point, or 0 if
// invalid or d is out of range (total function, safe on a
// default-constructed Gradient)
func (o *Gradient) Partial(d int) float64 {
	if !o.valid || d < 0 || d >= len(o.partials) {
		return 0
	}
	return o.partials[d]
}

// Partials returns a copy of every partial derivative, or nil if invalid
func (o *Gradient) Partials() []float64 {
	if !o.valid {
		return nil
	}
	return append([]float64(nil), o.partials...)
}

// Norm returns the L2 norm of the gradient, or 0 if invalid
func (o *Gradient) Norm() float64 {
	if !o.valid {
		return 0
	}
	var sum float64
	for _, v := range o.partials {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// NormInf returns the L-infinity norm of the gradient, or 0 if invalid
func (o *Gradient) NormInf() float64 {
	if !o.valid {
		return 0
	}
	var m float64
	for _, v := range o.partials {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// MaxIndex returns the index of the partial with the largest magnitude,
// ties broken by the lowest index; -1 if invalid
func (o *Gradient) MaxIndex() int {
	if !o.valid {
		return -1
	}
	best, bestAbs := 0, math.Abs(o.partials[0])
	for i := 1; i < len(o.partials); i++ {
		if a := math.Abs(o.partials[i]); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}

// UnitDirection returns the gradient normalized to unit length, or the
// zero vector if the norm is below 1e-15 or the gradient is invalid
func (o *Gradient) UnitDirection() []float64 {
	D := o.dim
	if !o.valid {
		D = len(o.partials)
	}
	u := make([]float64, D)
	if !o.valid {
		return u
	}
	n := o.Norm()
	if n < zeroNormTol {
		return u
	}
	for i, v := range o.partials {
		u[i] = v / n
	}
	return u
}
