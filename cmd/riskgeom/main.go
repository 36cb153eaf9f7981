// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/riskgeom/calc"
	"github.com/cpmech/riskgeom/constraint"
	"github.com/cpmech/riskgeom/eigen"
	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/fragility"
	"github.com/cpmech/riskgeom/grid"
	"github.com/cpmech/riskgeom/metric"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	verbose := flag.Bool("v", true, "print each scenario's result")
	flag.Parse()

	io.PfWhite("\nriskgeom -- geometric risk-surface analysis demo\n\n")
	io.Pf("Copyright 2016 The Riskgeom Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	ctx := engine.NewContext()

	scenarioGradient(ctx, *verbose)
	scenarioHessian(ctx, *verbose)
	scenarioTransportEmpty(ctx, *verbose)
	scenarioConstraint(ctx, *verbose)
	scenarioFragility(ctx, *verbose)
	scenarioJacobi(ctx, *verbose)
}

func newSquareGrid(ctx *engine.Context) *grid.Grid {
	g := grid.New(ctx)
	if err := g.AttachDimension(grid.Dimension{Name: "x", Kind: grid.KindSpot, Lo: -5, Hi: 5, N: 21}); err != nil {
		chk.Panic("%v", err)
	}
	if err := g.AttachDimension(grid.Dimension{Name: "y", Kind: grid.KindSpot, Lo: -5, Hi: 5, N: 21}); err != nil {
		chk.Panic("%v", err)
	}
	f := func(coords []float64, userData interface{}) (float64, error) {
		return coords[0]*coords[0] + coords[1]*coords[1], nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		chk.Panic("%v", err)
	}
	return g
}

func scenarioGradient(ctx *engine.Context, verbose bool) {
	g := newSquareGrid(ctx)
	grad := calc.NewGradient(ctx, g)
	if err := grad.Compute([]float64{2.0, 3.0}); err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("1. gradient of ||x||^2 at (2,3): partials=%v norm=%v\n", grad.Partials(), grad.Norm())
	}
}

func scenarioHessian(ctx *engine.Context, verbose bool) {
	g := newSquareGrid(ctx)
	hess := calc.NewHessian(ctx, g)
	if err := hess.Compute([]float64{2.0, 3.0}); err != nil {
		chk.Panic("%v", err)
	}
	eigvals := hess.Eigenvalues()
	if verbose {
		io.Pf("2. hessian of ||x||^2 at (2,3): trace=%v frobenius=%v eigenvalues=%v (%d sweeps)\n",
			hess.Trace(), hess.FrobeniusNorm(), eigvals, hess.EigenSweeps())
	}
}

func scenarioTransportEmpty(ctx *engine.Context, verbose bool) {
	t := metric.NewTransport(ctx)
	d := t.Distance([]float64{0, 0}, []float64{3, 4})
	if verbose {
		io.Pf("3. transport distance, empty metric, (0,0)->(3,4): %v\n", d)
	}
}

func scenarioConstraint(ctx *engine.Context, verbose bool) {
	s := constraint.NewSurface(ctx)
	if err := s.Add(&constraint.Constraint{
		Direction: constraint.Upper,
		DimIndex:  0,
		Threshold: 10,
		Active:    true,
	}); err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("4. constraint signed distance at x=9,10,11: %v, %v, %v\n",
			s.At(0).SignedDistance([]float64{9, 0}),
			s.At(0).SignedDistance([]float64{10, 0}),
			s.At(0).SignedDistance([]float64{11, 0}))
	}
}

func scenarioFragility(ctx *engine.Context, verbose bool) {
	g := grid.New(ctx)
	if err := g.AttachDimension(grid.Dimension{Name: "x", Lo: 0, Hi: 10, N: 11}); err != nil {
		chk.Panic("%v", err)
	}
	if err := g.AttachDimension(grid.Dimension{Name: "y", Lo: 0, Hi: 10, N: 11}); err != nil {
		chk.Panic("%v", err)
	}
	f := func(coords []float64, userData interface{}) (float64, error) {
		return 3*coords[0] + 4*coords[1], nil
	}
	if err := g.MapValues(context.Background(), f, nil); err != nil {
		chk.Panic("%v", err)
	}
	m, err := fragility.Compute(ctx, g, nil, fragility.DefaultWeights(), fragility.DefaultScales(), fragility.DefaultThreshold)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("5. fragility of f=3x+4y: mean=%v max=%v fraction-above-threshold=%v\n",
			m.Mean, m.Max, m.FracAboveThreshold)
	}
}

func scenarioJacobi(ctx *engine.Context, verbose bool) {
	M := [][]float64{
		{4, 0, 0},
		{0, 2, 0},
		{0, 0, 1},
	}
	eigvals, sweeps, err := eigen.Jacobi(M)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("6. jacobi on diag(4,2,1): eigenvalues=%v (%d sweeps)\n", eigvals, sweeps)
	}
}
