// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/riskgeom/eigen"
	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/grid"
)

// conditionSentinel substitutes for +Inf when |lambda_min| is too small
// to divide by, keeping downstream arithmetic finite
const conditionSentinel = 1e15

// singularTol is the smallest |lambda_min| treated as non-zero when
// computing the condition number
const singularTol = 1e-15

// Hessian is a symmetric D x D matrix of second partial derivatives,
// stored densely row-major, plus a lazily-populated eigenvalue cache.
// matrixValid is cleared by nothing but a failed Compute; eigenValid is
// cleared every time the matrix is recomputed.
type Hessian struct {
	ctx         *engine.Context
	g           *grid.Grid
	dim         int
	point       []float64
	matrix      [][]float64
	eigenvalues []float64
	sweeps      int
	matrixValid bool
	eigenValid  bool
}

// NewHessian returns a Hessian bound to g that reports failures on ctx
func NewHessian(ctx *engine.Context, g *grid.Grid) *Hessian {
	return &Hessian{ctx: ctx, g: g}
}

// Compute evaluates the Hessian of the tabulated field at p: a central
// second difference on the diagonal, a four-corner mixed-partial
// stencil off it, each written to H[i][j] and H[j][i] in lockstep so the
// stored matrix is exactly symmetric. Clears the eigenvalue cache.
func (o *Hessian) Compute(p []float64) error {
	o.matrixValid = false
	o.eigenValid = false
	D := o.g.NumDimensions()
	if len(p) != D {
		return engine.Fail(o.ctx, engine.ErrDimensionMismatch,
			"hessian: point has %d coordinates, grid has %d dimensions", len(p), D)
	}
	if !o.g.Populated() {
		return engine.Fail(o.ctx, engine.ErrNotInitialized,
			"hessian: grid has no tabulated field; call MapValues first")
	}

	dims := o.g.Dimensions()
	h := make([]float64, D)
	for i := range h {
		h[i] = dims[i].Spacing()
	}

	H := la.MatAlloc(D, D)
	f0 := o.g.Interpolate(p)
	probe := make([]float64, D)

	for i := 0; i < D; i++ {
		copy(probe, p)
		probe[i] = p[i] + h[i]
		fPlus := o.g.Interpolate(probe)

		copy(probe, p)
		probe[i] = p[i] - h[i]
		fMinus := o.g.Interpolate(probe)

		H[i][i] = (fPlus - 2*f0 + fMinus) / (h[i] * h[i])
	}

	for i := 0; i < D; i++ {
		for j := i + 1; j < D; j++ {
			copy(probe, p)
			probe[i] = p[i] + h[i]
			probe[j] = p[j] + h[j]
			fpp := o.g.Interpolate(probe)

			copy(probe, p)
			probe[i] = p[i] + h[i]
			probe[j] = p[j] - h[j]
			fpm := o.g.Interpolate(probe)

			copy(probe, p)
			probe[i] = p[i] - h[i]
			probe[j] = p[j] + h[j]
			fmp := o.g.Interpolate(probe)

			copy(probe, p)
			probe[i] = p[i] - h[i]
			probe[j] = p[j] - h[j]
			fmm := o.g.Interpolate(probe)

			hij := (fpp - fpm - fmp + fmm) / (4 * h[i] * h[j])
			H[i][j] = hij
			H[j][i] = hij
		}
	}

	o.dim = D
	o.point = append([]float64(nil), p...)
	o.matrix = H
	o.matrixValid = true
	o.eigenvalues = nil
	o.sweeps = 0
	return nil
}

// Valid reports whether the stored matrix reflects the last Compute call
func (o *Hessian) Valid() bool {
	return o.matrixValid
}

// Entry returns H[i][j], or 0 if invalid or out of range (total
// function, safe on a default-constructed Hessian)
func (o *Hessian) Entry(i, j int) float64 {
	if !o.matrixValid || i < 0 || j < 0 || i >= o.dim || j >= o.dim {
		return 0
	}
	return o.matrix[i][j]
}

// Matrix returns a copy of the dense D x D matrix, or nil if invalid
func (o *Hessian) Matrix() [][]float64 {
	if !o.matrixValid {
		return nil
	}
	out := la.MatAlloc(o.dim, o.dim)
	for i := range out {
		copy(out[i], o.matrix[i])
	}
	return out
}

// Trace returns sum(H[i][i]), or 0 if invalid
func (o *Hessian) Trace() float64 {
	if !o.matrixValid {
		return 0
	}
	var t float64
	for i := 0; i < o.dim; i++ {
		t += o.matrix[i][i]
	}
	return t
}

// FrobeniusNorm returns sqrt(sum H[i][j]^2), or 0 if invalid
func (o *Hessian) FrobeniusNorm() float64 {
	if !o.matrixValid {
		return 0
	}
	var sum float64
	for i := 0; i < o.dim; i++ {
		for j := 0; j < o.dim; j++ {
			sum += o.matrix[i][j] * o.matrix[i][j]
		}
	}
	return math.Sqrt(sum)
}

// ensureEigen lazily invokes the Jacobi eigensolver on a private working
// copy and caches the result; never mutates the stored matrix
func (o *Hessian) ensureEigen() error {
	if o.eigenValid {
		return nil
	}
	if !o.matrixValid {
		return engine.Fail(o.ctx, engine.ErrNotInitialized, "hessian: matrix not computed")
	}
	values, sweeps, err := eigen.Jacobi(o.matrix)
	if err != nil {
		return engine.Fail(o.ctx, engine.ErrNumericalInstability,
			"hessian: Jacobi eigensolver did not converge: %v", err)
	}
	o.eigenvalues = values
	o.sweeps = sweeps
	o.eigenValid = true
	return nil
}

// Eigenvalues returns the eigenvalues sorted algebraic-descending,
// computing and caching them on first call; nil if the matrix itself is
// invalid or the solver failed to converge
func (o *Hessian) Eigenvalues() []float64 {
	if err := o.ensureEigen(); err != nil {
		return nil
	}
	return append([]float64(nil), o.eigenvalues...)
}

// EigenSweeps returns the number of Jacobi sweeps used by the last
// eigenvalue computation, or 0 if not yet computed
func (o *Hessian) EigenSweeps() int {
	if !o.eigenValid {
		return 0
	}
	return o.sweeps
}

// ConditionNumber returns |lambda_max|/|lambda_min| over the eigenvalues;
// substitutes conditionSentinel (1e15) rather than +Inf when
// |lambda_min| is effectively zero, so downstream arithmetic stays
// finite. Returns 0 if the eigenvalues are unavailable.
func (o *Hessian) ConditionNumber() float64 {
	values := o.Eigenvalues()
	if len(values) == 0 {
		return 0
	}
	minAbs, maxAbs := math.Abs(values[0]), math.Abs(values[0])
	for _, v := range values {
		a := math.Abs(v)
		if a < minAbs {
			minAbs = a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if minAbs < singularTol {
		return conditionSentinel
	}
	return maxAbs / minAbs
}
