// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"context"
	"math"

	"github.com/cpmech/riskgeom/engine"
)

// maxDimensions is the largest number of dimensions a Grid accepts
const maxDimensions = 16

// Func is the caller-supplied pricing/valuation callback. It must be
// pure with respect to caller-visible state and well-defined across the
// entire declared dimension domain; the grid may invoke it in any order
// and, in principle, concurrently.
type Func func(coords []float64, userData interface{}) (float64, error)

// Grid is an ordered sequence of Dimensions plus an optional tabulated
// price field aligned 1-to-1 with flat indices. A Grid borrows its
// engine.Context for the lifetime of the object and must not outlive it.
type Grid struct {
	ctx       *engine.Context
	dims      []Dimension
	strides   []int
	total     int
	values    []float64
	populated bool
}

// New returns an empty Grid backed by ctx
func New(ctx *engine.Context) *Grid {
	return &Grid{ctx: ctx, total: 1}
}

// NumDimensions returns the number of attached dimensions
func (g *Grid) NumDimensions() int {
	return len(g.dims)
}

// TotalNodes returns N = product of all dimensions' sample counts
func (g *Grid) TotalNodes() int {
	return g.total
}

// Dimensions returns the attached dimensions, in attachment order
func (g *Grid) Dimensions() []Dimension {
	return g.dims
}

// Populated reports whether MapValues has successfully tabulated f
func (g *Grid) Populated() bool {
	return g.populated
}

// AttachDimension appends a new dimension to the grid. Attaching a
// dimension invalidates any previously tabulated price field (the flat
// index space changes shape). Fails with ErrInvalidArgument beyond 16
// dimensions, or if lo >= hi, or if n < 2.
func (g *Grid) AttachDimension(d Dimension) error {
	if len(g.dims) >= maxDimensions {
		return engine.Fail(g.ctx, engine.ErrInvalidArgument,
			"cannot attach more than %d dimensions", maxDimensions)
	}
	if d.Lo >= d.Hi {
		return engine.Fail(g.ctx, engine.ErrInvalidArgument,
			"dimension %q: lo (%g) must be < hi (%g)", d.Name, d.Lo, d.Hi)
	}
	if d.N < 2 {
		return engine.Fail(g.ctx, engine.ErrInvalidArgument,
			"dimension %q: sample count must be >= 2, got %d", d.Name, d.N)
	}
	g.dims = append(g.dims, d)
	g.rebuildStrides()
	g.values = nil
	g.populated = false
	return nil
}

// rebuildStrides recomputes row-major strides and the total node count:
// stride[D-1] = 1, stride[i] = stride[i+1] * m[i+1]
func (g *Grid) rebuildStrides() {
	D := len(g.dims)
	g.strides = make([]int, D)
	total := 1
	for i := D - 1; i >= 0; i-- {
		g.strides[i] = total
		total *= g.dims[i].N
	}
	g.total = total
}

// FlatIndex converts a multi-index (one coordinate index per dimension)
// into a flat index via the standard mixed-radix bijection
func (g *Grid) FlatIndex(multi []int) int {
	flat := 0
	for i, k := range multi {
		flat += k * g.strides[i]
	}
	return flat
}

// MultiIndex converts a flat index back into a multi-index; the inverse
// of FlatIndex, so FlatIndex(MultiIndex(flat)) == flat for all valid flat
func (g *Grid) MultiIndex(flat int) []int {
	D := len(g.dims)
	multi := make([]int, D)
	rem := flat
	for i := 0; i < D; i++ {
		multi[i] = rem / g.strides[i]
		rem -= multi[i] * g.strides[i]
	}
	return multi
}

// CoordinatesOf returns the real-valued coordinates of the node at flat
func (g *Grid) CoordinatesOf(flat int) []float64 {
	multi := g.MultiIndex(flat)
	coords := make([]float64, len(g.dims))
	for i, k := range multi {
		coords[i] = g.dims[i].Nodes()[k]
	}
	return coords
}

// MapValues iterates every flat index in [0,N), reconstructs its
// coordinates, invokes f once per node, and stores the resulting scalar.
// Invocation order is implementation-defined; callers must not rely on
// any particular traversal. The context.Context is checked for
// cancellation between node evaluations only (f itself is never
// interrupted mid-call); a cancelled context returns ctx.Err() without
// storing any new values, so a grid that was never tabulated stays
// unpopulated and a previously tabulated field is kept unchanged.
func (g *Grid) MapValues(cctx context.Context, f Func, userData interface{}) error {
	if len(g.dims) == 0 {
		return engine.Fail(g.ctx, engine.ErrNotInitialized, "grid has no dimensions attached")
	}
	values := make([]float64, g.total)
	for flat := 0; flat < g.total; flat++ {
		if cctx != nil {
			select {
			case <-cctx.Done():
				return cctx.Err()
			default:
			}
		}
		coords := g.CoordinatesOf(flat)
		v, err := f(coords, userData)
		if err != nil {
			return engine.Fail(g.ctx, engine.ErrPricingEngineFailed,
				"pricing callback failed at node %d: %v", flat, err)
		}
		values[flat] = v
	}
	g.values = values
	g.populated = true
	return nil
}

// GetStored returns the tabulated value at flat index, or 0 if the field
// is not populated (total function, safe on a default-constructed grid)
func (g *Grid) GetStored(flat int) float64 {
	if !g.populated || flat < 0 || flat >= len(g.values) {
		return 0
	}
	return g.values[flat]
}

// NearestIndex returns the flat index of the node closest to p under
// per-axis absolute deviation, ties broken by the lower index
func (g *Grid) NearestIndex(p []float64) int {
	D := len(g.dims)
	multi := make([]int, D)
	for i := 0; i < D; i++ {
		multi[i] = g.nearestNodeIndex(i, p[i])
	}
	return g.FlatIndex(multi)
}

// nearestNodeIndex returns the index along axis i of the node nearest x
func (g *Grid) nearestNodeIndex(i int, x float64) int {
	nodes := g.dims[i].Nodes()
	best, bestDist := 0, math.Inf(1)
	for k, v := range nodes {
		dist := math.Abs(v - x)
		if dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best
}

// Release clears the tabulated field; kept for lifecycle symmetry with
// the explicit create/release shape of the source engine
func (g *Grid) Release() {
	if g == nil {
		return
	}
	g.values = nil
	g.populated = false
}
