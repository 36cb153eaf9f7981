// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the discretized hyper-rectangular state-space
// grid: dimension bookkeeping, row-major flat<->multi index bijection,
// and multilinear (D-linear) interpolation of a tabulated scalar field.
package grid

import "github.com/cpmech/gosl/utl"

// Kind is an informational tag for a Dimension; the grid treats every
// kind identically
type Kind int

// dimension kind values
const (
	KindSpot Kind = iota
	KindVolatility
	KindRate
	KindTime
	KindCorrelation
	KindLiquidity
	KindFunding
	KindCustom
)

// Dimension is a named axis with a closed real interval [Lo, Hi] and an
// integer sample count N >= 2. Immutable once attached to a Grid.
type Dimension struct {
	Name string
	Kind Kind
	Lo   float64
	Hi   float64
	N    int
}

// Spacing returns the uniform grid spacing (Hi-Lo)/(N-1); this is the
// per-axis finite-difference step used by the calc package's gradient
// and Hessian operators when probing an interpolated field
func (d Dimension) Spacing() float64 {
	return (d.Hi - d.Lo) / float64(d.N-1)
}

// Nodes returns the generated axis samples via utl.LinSpace(Lo, Hi, N),
// which forces the last sample exactly to Hi and eliminates the
// floating-point drift a hand-rolled Lo+k*spacing loop would accumulate
func (d Dimension) Nodes() []float64 {
	return utl.LinSpace(d.Lo, d.Hi, d.N)
}

// clamp restricts x to [Lo, Hi]
func (d Dimension) clamp(x float64) float64 {
	if x < d.Lo {
		return d.Lo
	}
	if x > d.Hi {
		return d.Hi
	}
	return x
}
