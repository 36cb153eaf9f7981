// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riskgeom/engine"
)

func Test_transport01(tst *testing.T) {

	chk.PrintTitle("transport01 (Euclidean fallback with no samples)")

	ctx := engine.NewContext()
	t := NewTransport(ctx)

	d := t.Distance([]float64{0, 0}, []float64{3, 4})
	if math.Abs(d-5.0) > 0.1 {
		tst.Errorf("Euclidean fallback distance wrong: got %v want ~5.0", d)
		return
	}
}

func Test_transport02(tst *testing.T) {

	chk.PrintTitle("transport02 (identity metric matches Euclidean)")

	ctx := engine.NewContext()
	t := NewTransport(ctx)
	err := t.SetDefault([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		tst.Errorf("SetDefault failed: %v", err)
		return
	}

	a := []float64{0, 0}
	b := []float64{3, 4}
	d := t.Distance(a, b)
	want := euclidean(a, b)
	if math.Abs(d-want) > 1e-9 {
		tst.Errorf("identity-metric distance wrong: got %v want %v", d, want)
		return
	}
}

func Test_transport03(tst *testing.T) {

	chk.PrintTitle("transport03 (sample cap rejects beyond 1024)")

	ctx := engine.NewContext()
	t := NewTransport(ctx)
	t.SetDims(2)
	ident := [][]float64{{1, 0}, {0, 1}}
	for i := 0; i < maxSamples; i++ {
		err := t.AddSample([]float64{float64(i), 0}, ident)
		if err != nil {
			tst.Errorf("unexpected failure adding sample %d: %v", i, err)
			return
		}
	}
	err := t.AddSample([]float64{9999, 0}, ident)
	if err == nil {
		tst.Errorf("1025th sample should have been rejected")
		return
	}
}

func Test_transport04(tst *testing.T) {

	chk.PrintTitle("transport04 (IDW interpolation and local cost)")

	ctx := engine.NewContext()
	t := NewTransport(ctx)
	t.AddSample([]float64{0, 0}, [][]float64{{1, 0}, {0, 1}})
	t.AddSample([]float64{10, 0}, [][]float64{{4, 0}, {0, 4}})

	// query point coincides with the first sample: IDW weight there
	// dominates (1/eps^2), so the tensor should be ~ the first sample's
	G := t.TensorAt([]float64{0, 0})
	if math.Abs(G[0][0]-1) > 1e-6 {
		tst.Errorf("tensor at first sample should be ~identity-scaled, got %v", G[0][0])
		return
	}

	cost := t.LocalCost([]float64{0, 0}, []float64{1, 0})
	if cost <= 0 {
		tst.Errorf("local cost should be positive, got %v", cost)
		return
	}
}

func Test_transport05(tst *testing.T) {

	chk.PrintTitle("transport05 (path cost sums pairwise geodesic distances)")

	ctx := engine.NewContext()
	t := NewTransport(ctx)
	t.SetDefault([][]float64{{1, 0}, {0, 1}})

	path := [][]float64{{0, 0}, {3, 0}, {3, 4}}
	got := t.PathCost(path)
	want := t.Distance(path[0], path[1]) + t.Distance(path[1], path[2])
	if math.Abs(got-want) > 1e-9 {
		tst.Errorf("path cost wrong: got %v want %v", got, want)
		return
	}
}
