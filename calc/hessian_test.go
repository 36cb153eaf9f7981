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

func Test_hessian01(tst *testing.T) {

	chk.PrintTitle("hessian01 (||x||^2 in 2D)")

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

	hess := NewHessian(ctx, g)
	if err := hess.Compute([]float64{2.0, 3.0}); err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 2.0
			}
			if math.Abs(hess.Entry(i, j)-want) > 0.2 {
				tst.Errorf("H[%d][%d] wrong: got %v want %v", i, j, hess.Entry(i, j), want)
				return
			}
		}
	}
	if math.Abs(hess.Trace()-4) > 0.4 {
		tst.Errorf("trace wrong: got %v want 4", hess.Trace())
		return
	}
	if math.Abs(hess.FrobeniusNorm()-math.Sqrt(8)) > 0.5 {
		tst.Errorf("frobenius norm wrong: got %v want %v", hess.FrobeniusNorm(), math.Sqrt(8))
		return
	}

	eig := hess.Eigenvalues()
	if len(eig) != 2 || math.Abs(eig[0]-2) > 0.2 || math.Abs(eig[1]-2) > 0.2 {
		tst.Errorf("eigenvalues wrong: got %v want {2, 2}", eig)
		return
	}
}

func Test_hessian02(tst *testing.T) {

	chk.PrintTitle("hessian02 (symmetry invariant: H[i][j] == H[j][i] bitwise)")

	ctx := engine.NewContext()
	g := grid.New(ctx)
	g.AttachDimension(grid.Dimension{Name: "x", Lo: -3, Hi: 3, N: 13})
	g.AttachDimension(grid.Dimension{Name: "y", Lo: -3, Hi: 3, N: 13})
	g.AttachDimension(grid.Dimension{Name: "z", Lo: -3, Hi: 3, N: 13})

	f := func(coords []float64, userData interface{}) (float64, error) {
		x, y, z := coords[0], coords[1], coords[2]
		return x*x + 2*x*y + 3*y*z + z*z, nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		tst.Errorf("MapValues failed: %v", err)
		return
	}

	hess := NewHessian(ctx, g)
	if err := hess.Compute([]float64{0.5, -0.5, 1.0}); err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}
	M := hess.Matrix()
	for i := range M {
		for j := range M {
			if M[i][j] != M[j][i] {
				tst.Errorf("hessian not symmetric at [%d][%d]: %v vs %v", i, j, M[i][j], M[j][i])
				return
			}
		}
	}
}

func Test_hessian03(tst *testing.T) {

	chk.PrintTitle("hessian03 (condition number sentinel on a singular Hessian)")

	ctx := engine.NewContext()
	g := grid.New(ctx)
	g.AttachDimension(grid.Dimension{Name: "x", Lo: -5, Hi: 5, N: 21})
	g.AttachDimension(grid.Dimension{Name: "y", Lo: -5, Hi: 5, N: 21})

	// f depends only on x: the Hessian has a zero eigenvalue along y
	f := func(coords []float64, userData interface{}) (float64, error) {
		return coords[0] * coords[0], nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		tst.Errorf("MapValues failed: %v", err)
		return
	}

	hess := NewHessian(ctx, g)
	if err := hess.Compute([]float64{1, 1}); err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}
	if hess.ConditionNumber() != conditionSentinel {
		tst.Errorf("condition number should saturate at the sentinel, got %v", hess.ConditionNumber())
		return
	}
}
