// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragility

import (
	"github.com/cpmech/riskgeom/calc"
	"github.com/cpmech/riskgeom/constraint"
	"github.com/cpmech/riskgeom/engine"
	"github.com/cpmech/riskgeom/grid"
)

// FragilePoint records the local geometry at a node whose composite
// score crossed the configured threshold. Coordinates are owned by the
// Map, not the caller; treat Coords as a borrow.
type FragilePoint struct {
	Coords         []float64
	Score          float64
	CurvatureProxy float64 // Hessian Frobenius norm at this point
	GradientNorm   float64
	NearConstraint bool // see Compute doc: false/"unknown" until MapWithConstraints joins a surface
}

// Map is the dense [0,1] fragility field over every grid node, plus the
// sparse list of fragile points and running aggregate statistics
type Map struct {
	Scores             []float64
	Points             []FragilePoint
	Max                float64
	Mean               float64
	FracAboveThreshold float64
}

// Compute walks every node of g, runs the gradient and Hessian operators
// at each, and composes a fragility score. surface may be nil, in which
// case the constraint component is always 0 (no binding constraint).
// A per-node failure of the gradient or Hessian operator is swallowed —
// the node is scored 0 and the sweep continues; this is the expected-
// resilience contract: no single pathological point aborts the map.
// The NearConstraint flag is always false in this pass; see
// MapWithConstraints for the dedicated post-hoc join.
func Compute(ctx *engine.Context, g *grid.Grid, surface *constraint.Surface, weights Weights, scales Scales, threshold float64) (*Map, error) {
	if !g.Populated() {
		return nil, engine.Fail(ctx, engine.ErrNotInitialized, "fragility: grid has no tabulated field")
	}

	N := g.TotalNodes()
	scores := make([]float64, N)
	var points []FragilePoint
	var sum, max float64

	grad := calc.NewGradient(ctx, g)
	hess := calc.NewHessian(ctx, g)

	for flat := 0; flat < N; flat++ {
		coords := g.CoordinatesOf(flat)

		score, gradNorm, frob, ok := scoreAt(grad, hess, surface, weights, scales, coords)
		if !ok {
			scores[flat] = 0
			continue
		}

		scores[flat] = score
		sum += score
		if score > max {
			max = score
		}
		if score >= threshold {
			points = append(points, FragilePoint{
				Coords:         coords,
				Score:          score,
				CurvatureProxy: frob,
				GradientNorm:   gradNorm,
				NearConstraint: false,
			})
		}
	}

	return &Map{
		Scores:             scores,
		Points:             points,
		Max:                max,
		Mean:               sum / float64(N),
		FracAboveThreshold: float64(len(points)) / float64(N),
	}, nil
}

// scoreAt computes the composite fragility score at coords, returning
// ok=false if the gradient or Hessian operator failed at this point
func scoreAt(grad *calc.Gradient, hess *calc.Hessian, surface *constraint.Surface, weights Weights, scales Scales, coords []float64) (score, gradNorm, frob float64, ok bool) {
	if err := grad.Compute(coords); err != nil {
		return 0, 0, 0, false
	}
	if err := hess.Compute(coords); err != nil {
		return 0, 0, 0, false
	}

	gradNorm = grad.Norm()
	frob = hess.FrobeniusNorm()
	cond := hess.ConditionNumber()

	var consComponent float64
	if surface != nil && surface.Len() > 0 {
		d, _ := surface.MinDistance(coords)
		consComponent = constraintComponent(d, scales.ConstraintThreshold)
	}

	gComp := gradientComponent(gradNorm, scales.GradientScale)
	cComp := curvatureComponent(frob, scales.CurvatureScale)
	kComp := conditioningComponent(cond, scales.ConditionThreshold)

	score = composite(weights, gComp, cComp, kComp, consComponent)
	return score, gradNorm, frob, true
}

// MapWithConstraints re-evaluates the NearConstraint flag on every
// fragile point already present in m against surface, using nearTol as
// the "near" cutoff on the signed distance. It joins constraints after
// the sweep rather than over the full grid: it only touches the sparse
// fragile-point list, so the dense Compute sweep is unaffected.
func MapWithConstraints(m *Map, surface *constraint.Surface, nearTol float64) {
	if m == nil || surface == nil {
		return
	}
	for i := range m.Points {
		d, _ := surface.MinDistance(m.Points[i].Coords)
		m.Points[i].NearConstraint = d <= nearTol
	}
}
