// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fragility composes the gradient, curvature, conditioning, and
// constraint-distance geometry of a point into a single [0,1] fragility
// score, and walks a whole grid.Grid to build a dense fragility field
// plus a sparse list of points whose score crosses a threshold.
package fragility

import "math"

// Weights are the relative contributions of the four fragility
// components to the composite score. Default values sum to 1, though
// the composite is always clamped to [0,1] regardless.
type Weights struct {
	Gradient     float64
	Curvature    float64
	Conditioning float64
	Constraint   float64
}

// DefaultWeights returns the spec's default weighting: (0.25, 0.30, 0.25, 0.20)
func DefaultWeights() Weights {
	return Weights{Gradient: 0.25, Curvature: 0.30, Conditioning: 0.25, Constraint: 0.20}
}

// Scales are the normalization constants the raw geometric quantities
// are mapped through before composition
type Scales struct {
	GradientScale       float64 // s_g
	CurvatureScale      float64 // s_c
	ConditionThreshold  float64 // tau_kappa
	ConstraintThreshold float64 // tau_d
}

// DefaultScales returns scale=1 for gradient/curvature, a conditioning
// threshold of 1e6, and a constraint threshold of 1.0; callers with
// domain-specific units should override these
func DefaultScales() Scales {
	return Scales{
		GradientScale:       1,
		CurvatureScale:      1,
		ConditionThreshold:  1e6,
		ConstraintThreshold: 1,
	}
}

// DefaultThreshold is the fragile-point cutoff score used when a caller
// does not specify one
const DefaultThreshold = 0.5

// gradientComponent maps ||grad f||/scale through x/(1+x)
func gradientComponent(normGrad, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	x := normGrad / scale
	return x / (1 + x)
}

// curvatureComponent maps ||H||_F/scale through x/(1+x)
func curvatureComponent(frobNorm, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	x := frobNorm / scale
	return x / (1 + x)
}

// conditioningComponent is 0 below kappa=1, else clamp(ln(kappa)/ln(tau), 0, 1)
func conditioningComponent(kappa, tau float64) float64 {
	if kappa < 1 {
		return 0
	}
	if tau <= 1 {
		tau = math.E
	}
	return clamp01(math.Log(kappa) / math.Log(tau))
}

// constraintComponent is 1 when d<=0 (violated), 0 when d>=tau, else
// linear between
func constraintComponent(d, tau float64) float64 {
	if d <= 0 {
		return 1
	}
	if d >= tau {
		return 0
	}
	return 1 - d/tau
}

// clamp01 restricts x to [0,1]
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// composite combines the four components under weights, clamped to [0,1]
func composite(w Weights, g, c, k, cons float64) float64 {
	return clamp01(w.Gradient*g + w.Curvature*c + w.Conditioning*k + w.Constraint*cons)
}

// Classify returns the reporting-only band for a score: stable (<0.25),
// sensitive (<0.50), fragile (<0.75), else critical
func Classify(score float64) string {
	switch {
	case score < 0.25:
		return "stable"
	case score < 0.50:
		return "sensitive"
	case score < 0.75:
		return "fragile"
	default:
		return "critical"
	}
}
