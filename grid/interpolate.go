// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// bracket holds, for one axis, the bracketing node-index pair and the
// normalized parameter t in [0,1] within that bracket
type bracket struct {
	lo, hi int
	t      float64
}

// locateBracket clamps x into [Lo,Hi] and finds the bracketing node
// pair (k, k+1) via linear scan; D is small (<=16) and m is typically
// <=101, so a linear scan is cheap and a binary search is merely an
// allowed optimization, not a requirement
func (d Dimension) locateBracket(x float64) bracket {
	x = d.clamp(x)
	nodes := d.Nodes()
	if x <= nodes[0] {
		return bracket{lo: 0, hi: 0, t: 0}
	}
	if x >= nodes[d.N-1] {
		return bracket{lo: d.N - 1, hi: d.N - 1, t: 0}
	}
	for k := 0; k < d.N-1; k++ {
		if x >= nodes[k] && x <= nodes[k+1] {
			span := nodes[k+1] - nodes[k]
			t := 0.0
			if span > 0 {
				t = (x - nodes[k]) / span
			}
			return bracket{lo: k, hi: k + 1, t: t}
		}
	}
	return bracket{lo: d.N - 1, hi: d.N - 1, t: 0}
}

// Interpolate performs standard D-linear (multilinear) interpolation of
// the tabulated field at point p. Coordinates outside [Lo,Hi] on any
// axis are clamped: finite-difference stencils in the calc package rely
// on this clamping when a probe reaches the boundary. Returns 0.0 if the
// field is not populated — a soft failure used as a sentinel; callers
// that need a hard failure should check Populated() first.
func (g *Grid) Interpolate(p []float64) float64 {
	if !g.populated {
		return 0
	}
	D := len(g.dims)
	brackets := make([]bracket, D)
	for i := 0; i < D; i++ {
		brackets[i] = g.dims[i].locateBracket(p[i])
	}
	var sum float64
	corners := 1 << uint(D)
	multi := make([]int, D)
	for c := 0; c < corners; c++ {
		weight := 1.0
		for i := 0; i < D; i++ {
			if (c>>uint(i))&1 == 1 {
				weight *= brackets[i].t
				multi[i] = brackets[i].hi
			} else {
				weight *= 1 - brackets[i].t
				multi[i] = brackets[i].lo
			}
		}
		if weight == 0 {
			continue
		}
		sum += weight * g.GetStored(g.FlatIndex(multi))
	}
	return sum
}
