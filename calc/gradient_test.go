// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/grid"
)

func Test_gradient01(tst *testing.T) {

	chk.PrintTitle("gradient01 (||x||^2 in 2D)")

	ctx := engine.NewContext()
	g := grid.New(ctx)
	g.AttachDimension(grid.Dimension{Name: "x", Lo: -5, Hi: 5, N: 21})
	g.AttachDimension(grid.Dimension{Name: "y", Lo: -5, Hi: 5, N: 21})

	f := func(coords []float64, userData interface{}) (float64, error) {
		return coords[0]*coords[0] + coords[1]*coords[1], nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		tst.Errorf("MapValues failed: %v", err)
		return
	}

	grad := NewGradient(ctx, g)
	if err := grad.Compute([]float64{2.0, 3.0}); err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	if math.Abs(grad.Partial(0)-4.0) > 0.1 {
		tst.Errorf("partial x wrong: got %v want 4.0", grad.Partial(0))
		return
	}
	if math.Abs(grad.Partial(1)-6.0) > 0.1 {
		tst.Errorf("partial y wrong: got %v want 6.0", grad.Partial(1))
		return
	}
	if math.Abs(grad.Norm()-math.Sqrt(52)) > 0.2 {
		tst.Errorf("norm wrong: got %v want %v", grad.Norm(), math.Sqrt(52))
		return
	}
}

func Test_gradient02(tst *testing.T) {

	chk.PrintTitle("gradient02 (linear surface: gradient equals the coefficient vector)")

	ctx := engine.NewContext()
	g := grid.New(ctx)
	g.AttachDimension(grid.Dimension{Name: "x", Lo: 0, Hi: 10, N: 11})
	g.AttachDimension(grid.Dimension{Name: "y", Lo: 0, Hi: 10, N: 11})

	f := func(coords []float64, userData interface{}) (float64, error) {
		return 3*coords[0] + 4*coords[1] + 7, nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		tst.Errorf("MapValues failed: %v", err)
		return
	}

	grad := NewGradient(ctx, g)
	if err := grad.Compute([]float64{5, 5}); err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}
	if math.Abs(grad.Partial(0)-3) > 1e-6 || math.Abs(grad.Partial(1)-4) > 1e-6 {
		tst.Errorf("linear gradient wrong: got (%v, %v) want (3, 4)", grad.Partial(0), grad.Partial(1))
		return
	}
}

func Test_gradient03(tst *testing.T) {

	chk.PrintTitle("gradient03 (dimension mismatch and uninitialized grid)")

	ctx := engine.NewContext()
	g := grid.New(ctx)
	g.AttachDimension(grid.Dimension{Name: "x", Lo: 0, Hi: 1, N: 3})

	grad := NewGradient(ctx, g)
	err := grad.Compute([]float64{0})
	if err == nil {
		tst.Errorf("Compute should fail: grid has no tabulated field yet")
		return
	}

	f := func(coords []float64, userData interface{}) (float64, error) { return coords[0], nil }
	g.MapValues(context.Background(), f, nil)

	err = grad.Compute([]float64{0, 0})
	if err == nil {
		tst.Errorf("Compute should fail: point has 2 coords, grid has 1 dimension")
		return
	}
}
