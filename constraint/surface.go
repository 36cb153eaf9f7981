// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/riskgeom/engine"
)

// maxConstraints is the largest number of constraints a Surface accepts
const maxConstraints = 64

// Surface owns an ordered list of constraints (capped at 64) and
// answers admissibility queries over the active subset
type Surface struct {
	ctx         *engine.Context
	constraints []*Constraint
}

// NewSurface returns an empty Surface backed by ctx
func NewSurface(ctx *engine.Context) *Surface {
	return &Surface{ctx: ctx}
}

// Add appends a constraint to the surface; fails with
// ErrInvalidArgument beyond 64 constraints
func (s *Surface) Add(c *Constraint) error {
	if len(s.constraints) >= maxConstraints {
		return engine.Fail(s.ctx, engine.ErrInvalidArgument,
			"cannot add more than %d constraints to a surface", maxConstraints)
	}
	s.constraints = append(s.constraints, c)
	return nil
}

// Len returns the number of constraints on the surface
func (s *Surface) Len() int {
	return len(s.constraints)
}

// At returns the constraint at index i, or nil if out of range
func (s *Surface) At(i int) *Constraint {
	if i < 0 || i >= len(s.constraints) {
		return nil
	}
	return s.constraints[i]
}

// MinDistance returns the minimum signed distance over active
// constraints and the index of the most-binding one; returns
// (+Inf, -1) if there are no active constraints (vacuously admissible,
// a total function safe to call on an empty surface)
func (s *Surface) MinDistance(coords []float64) (float64, int) {
	best := math.Inf(1)
	bestIdx := -1
	for i, c := range s.constraints {
		if !c.Active {
			continue
		}
		d := c.SignedDistance(coords)
		if bestIdx == -1 || d < best {
			best, bestIdx = d, i
		}
	}
	return best, bestIdx
}

// MostBinding is a convenience wrapper returning only the index from
// MinDistance
func (s *Surface) MostBinding(coords []float64) int {
	_, idx := s.MinDistance(coords)
	return idx
}

// AnyHardViolation reports whether any active Hard constraint is violated
func (s *Surface) AnyHardViolation(coords []float64) bool {
	for _, c := range s.constraints {
		if c.Active && c.Hardness == Hard && c.Violated(coords) {
			return true
		}
	}
	return false
}

// TotalSoftPenalty returns sum(PenaltyRate * max(0, -signedDistance))
// over active Soft constraints
func (s *Surface) TotalSoftPenalty(coords []float64) float64 {
	var total float64
	for _, c := range s.constraints {
		if !c.Active || c.Hardness != Soft {
			continue
		}
		d := c.SignedDistance(coords)
		if d < 0 {
			total += c.PenaltyRate * (-d)
		}
	}
	return total
}
