// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/grid"
)

// GradientDirect computes the gradient of f at p directly from the
// callback, bypassing the grid's tabulation and interpolation entirely.
// h is used uniformly across every axis (unlike the grid-backed
// Gradient, which must use per-axis grid spacing). Purpose: one-shot
// sensitivity checks and validation against closed forms (spec section
// 4.10); the teacher's msolid.Driver offers the same central/forward
// choice via its UseDfwd flag, grounding the stencil option here.
func GradientDirect(ctx *engine.Context, f grid.Func, userData interface{}, p []float64, h float64, stencil Stencil) ([]float64, error) {
	if h <= 0 {
		return nil, engine.Fail(ctx, engine.ErrInvalidArgument, "direct gradient: step must be > 0, got %g", h)
	}
	D := len(p)
	partials := make([]float64, D)
	probe := make([]float64, D)

	for d := 0; d < D; d++ {
		copy(probe, p)

		if stencil == StencilForward {
			f0, err := f(p, userData)
			if err != nil {
				return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
			}
			probe[d] = p[d] + h
			fPlus, err := f(probe, userData)
			if err != nil {
				return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
			}
			partials[d] = (fPlus - f0) / h
			continue
		}

		probe[d] = p[d] + h
		fPlus, err := f(probe, userData)
		if err != nil {
			return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
		}

		copy(probe, p)
		probe[d] = p[d] - h
		fMinus, err := f(probe, userData)
		if err != nil {
			return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
		}

		if stencil == StencilFivePoint {
			copy(probe, p)
			probe[d] = p[d] + 2*h
			fPlus2, err := f(probe, userData)
			if err != nil {
				return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
			}
			copy(probe, p)
			probe[d] = p[d] - 2*h
			fMinus2, err := f(probe, userData)
			if err != nil {
				return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct gradient: callback failed: %v", err)
			}
			partials[d] = (-fPlus2 + 8*fPlus - 8*fMinus + fMinus2) / (12 * h)
			continue
		}

		partials[d] = (fPlus - fMinus) / (2 * h)
	}
	return partials, nil
}

// HessianDirect computes the Hessian of f at p directly from the
// callback, with h used uniformly across every axis. Always uses the
// mandatory central-difference formulas from spec section 4.3; the
// stencil alternatives in spec section 4.2 apply to the gradient, not
// the Hessian's mixed-partial stencil.
func HessianDirect(ctx *engine.Context, f grid.Func, userData interface{}, p []float64, h float64) ([][]float64, error) {
	if h <= 0 {
		return nil, engine.Fail(ctx, engine.ErrInvalidArgument, "direct hessian: step must be > 0, got %g", h)
	}
	D := len(p)
	H := la.MatAlloc(D, D)
	probe := make([]float64, D)

	f0, err := f(p, userData)
	if err != nil {
		return nil, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct hessian: callback failed: %v", err)
	}

	evalAt := func(coords []float64) (float64, error) {
		v, err := f(coords, userData)
		if err != nil {
			return 0, engine.Fail(ctx, engine.ErrPricingEngineFailed, "direct hessian: callback failed: %v", err)
		}
		return v, nil
	}

	for i := 0; i < D; i++ {
		copy(probe, p)
		probe[i] = p[i] + h
		fPlus, err := evalAt(probe)
		if err != nil {
			return nil, err
		}
		copy(probe, p)
		probe[i] = p[i] - h
		fMinus, err := evalAt(probe)
		if err != nil {
			return nil, err
		}
		H[i][i] = (fPlus - 2*f0 + fMinus) / (h * h)
	}

	for i := 0; i < D; i++ {
		for j := i + 1; j < D; j++ {
			copy(probe, p)
			probe[i] = p[i] + h
			probe[j] = p[j] + h
			fpp, err := evalAt(probe)
			if err != nil {
				return nil, err
			}

			copy(probe, p)
			probe[i] = p[i] + h
			probe[j] = p[j] - h
			fpm, err := evalAt(probe)
			if err != nil {
				return nil, err
			}

			copy(probe, p)
			probe[i] = p[i] - h
			probe[j] = p[j] + h
			fmp, err := evalAt(probe)
			if err != nil {
				return nil, err
			}

			copy(probe, p)
			probe[i] = p[i] - h
			probe[j] = p[j] - h
			fmm, err := evalAt(probe)
			if err != nil {
				return nil, err
			}

			hij := (fpp - fpm - fmp + fmm) / (4 * h * h)
			H[i][j] = hij
			H[j][i] = hij
		}
	}

	return H, nil
}
