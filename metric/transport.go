// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metric implements a sampled, spatially-varying symmetric
// positive-definite tensor field and the geodesic/local-cost calculus
// built on top of it: inverse-distance-weighted tensor interpolation and
// a discretized geodesic distance approximation along a straight
// Euclidean segment.
package metric

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/riskgeom/engine"
)

// maxSamples is the largest number of (coords, tensor) pairs a Transport accepts
const maxSamples = 1024

// geodesicSubintervals is the number of sub-intervals S the straight
// Euclidean segment between two points is discretized into when
// approximating geodesic distance
const geodesicSubintervals = 100

// idwExponent is the inverse-distance-weighting exponent p used when
// interpolating sampled tensors
const idwExponent = 2

// idwEpsilon avoids division by zero when a query point coincides with a sample
const idwEpsilon = 1e-10

// Sample is a single (coords, tensor) pair in the sample layer
type Sample struct {
	Coords []float64
	Tensor [][]float64
}

// Transport is a sampled SPD tensor field g_ij(x) with inverse-distance
// interpolation and a default tensor (identity, unless overridden) used
// when no sample contributes. Dimensionality D is fixed by the first
// sample added; a Transport with no samples and no default dimension
// falls back to Euclidean geometry (the documented degenerate case).
type Transport struct {
	ctx      *engine.Context
	dim      int
	dimSet   bool
	samples  []Sample
	fallback [][]float64 // user-set default tensor, nil until SetDefault
	radius   float64     // 0 means unrestricted (global)
}

// NewTransport returns an empty Transport backed by ctx
func NewTransport(ctx *engine.Context) *Transport {
	return &Transport{ctx: ctx}
}

// SetDims fixes the dimensionality of the metric before any sample is
// added; once a dimension has been fixed (by SetDims, SetDefault or the
// first AddSample), the same value is a no-op and a different value
// fails with ErrDimensionMismatch
func (t *Transport) SetDims(d int) error {
	if d < 1 {
		return engine.Fail(t.ctx, engine.ErrInvalidArgument, "metric: dimension must be >= 1, got %d", d)
	}
	if t.dimSet && t.dim != d {
		return engine.Fail(t.ctx, engine.ErrDimensionMismatch,
			"metric: dimension already fixed at %d, cannot change to %d", t.dim, d)
	}
	t.dim = d
	t.dimSet = true
	return nil
}

// SetRadius sets the interpolation cutoff radius; 0 means global
// (every sample contributes regardless of distance)
func (t *Transport) SetRadius(r float64) error {
	if r < 0 {
		return engine.Fail(t.ctx, engine.ErrInvalidArgument, "metric: radius must be >= 0, got %g", r)
	}
	t.radius = r
	return nil
}

// SetDefault sets the tensor returned when no sample contributes at a
// query point; tensor must be D×D once D is known
func (t *Transport) SetDefault(tensor [][]float64) error {
	if t.dimSet && len(tensor) != t.dim {
		return engine.Fail(t.ctx, engine.ErrDimensionMismatch,
			"metric: default tensor is %d×%d, dimension is %d", len(tensor), len(tensor), t.dim)
	}
	if !t.dimSet && len(tensor) > 0 {
		t.dim = len(tensor)
		t.dimSet = true
	}
	t.fallback = copyTensor(tensor)
	return nil
}

// AddSample appends a (coords, tensor) pair; the first sample fixes D
// for every subsequent sample and query. Fails with ErrInvalidArgument
// beyond 1,024 samples, and with ErrDimensionMismatch if coords/tensor
// disagree with the fixed D.
func (t *Transport) AddSample(coords []float64, tensor [][]float64) error {
	if len(t.samples) >= maxSamples {
		return engine.Fail(t.ctx, engine.ErrInvalidArgument,
			"cannot add more than %d samples to a transport metric", maxSamples)
	}
	if !t.dimSet {
		t.dim = len(coords)
		t.dimSet = true
	}
	if len(coords) != t.dim {
		return engine.Fail(t.ctx, engine.ErrDimensionMismatch,
			"metric: sample coords have %d components, dimension is %d", len(coords), t.dim)
	}
	if len(tensor) != t.dim {
		return engine.Fail(t.ctx, engine.ErrDimensionMismatch,
			"metric: sample tensor is %d rows, dimension is %d", len(tensor), t.dim)
	}
	t.samples = append(t.samples, Sample{
		Coords: append([]float64(nil), coords...),
		Tensor: copyTensor(tensor),
	})
	return nil
}

// HasDimension reports whether D has been fixed (by SetDims, SetDefault,
// or an AddSample); a Transport without a fixed dimension is the
// degenerate Euclidean-fallback case
func (t *Transport) HasDimension() bool {
	return t.dimSet
}

// defaultTensor returns the identity D×D tensor, or the user override if set
func (t *Transport) defaultTensor() [][]float64 {
	if t.fallback != nil {
		return t.fallback
	}
	return identity(t.dim)
}

// TensorAt returns the interpolated metric tensor at c: inverse-distance
// weighting with exponent 2 over every sample within radius (0 = all),
// falling back to the default tensor if none contribute
func (t *Transport) TensorAt(c []float64) [][]float64 {
	if !t.dimSet {
		return nil
	}
	var sumW float64
	acc := la.MatAlloc(t.dim, t.dim)

	for _, s := range t.samples {
		r := euclidean(c, s.Coords)
		if t.radius > 0 && r > t.radius {
			continue
		}
		w := 1.0 / math.Pow(r+idwEpsilon, idwExponent)
		sumW += w
		for i := 0; i < t.dim; i++ {
			for j := 0; j < t.dim; j++ {
				acc[i][j] += w * s.Tensor[i][j]
			}
		}
	}

	if sumW == 0 {
		return t.defaultTensor()
	}
	for i := 0; i < t.dim; i++ {
		for j := 0; j < t.dim; j++ {
			acc[i][j] /= sumW
		}
	}
	return acc
}

// LocalCost returns sqrt(v^T G(c) v), the infinitesimal transport cost
// of a displacement v at c
func (t *Transport) LocalCost(c, v []float64) float64 {
	if !t.dimSet {
		return euclideanNorm(v)
	}
	G := t.TensorAt(c)
	return math.Sqrt(quadForm(G, v))
}

// Distance returns the approximate geodesic distance between a and b:
// with no fixed dimension it falls back to the Euclidean distance
// between a and b (the documented degenerate case); otherwise it
// discretizes the straight segment into 100 sub-intervals and sums the
// local cost at each midpoint.
func (t *Transport) Distance(a, b []float64) float64 {
	if !t.dimSet {
		return euclidean(a, b)
	}
	D := len(a)
	delta := make([]float64, D)
	for i := range delta {
		delta[i] = (b[i] - a[i]) / geodesicSubintervals
	}
	mid := make([]float64, D)
	var total float64
	for s := 0; s < geodesicSubintervals; s++ {
		for i := range mid {
			mid[i] = a[i] + (float64(s)+0.5)*delta[i]
		}
		G := t.TensorAt(mid)
		total += math.Sqrt(quadForm(G, delta))
	}
	return total
}

// PathCost sums the geodesic Distance between consecutive points of a polyline
func (t *Transport) PathCost(points [][]float64) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += t.Distance(points[i-1], points[i])
	}
	return total
}

// quadForm returns v^T M v
func quadForm(M [][]float64, v []float64) float64 {
	D := len(v)
	var sum float64
	for i := 0; i < D; i++ {
		var row float64
		for j := 0; j < D; j++ {
			row += M[i][j] * v[j]
		}
		sum += v[i] * row
	}
	return sum
}

// euclidean returns the Euclidean distance between a and b
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// euclideanNorm returns the Euclidean norm of v
func euclideanNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// identity returns the D×D identity matrix
func identity(d int) [][]float64 {
	m := la.MatAlloc(d, d)
	for i := 0; i < d; i++ {
		m[i][i] = 1
	}
	return m
}

// copyTensor returns a deep copy of m
func copyTensor(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := la.MatAlloc(len(m), len(m))
	for i, row := range m {
		copy(out[i], row)
	}
	return out
}
