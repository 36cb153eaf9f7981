// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riskgeom/engine"
)

func Test_surface01(tst *testing.T) {

	chk.PrintTitle("surface01 (upper constraint signed distance)")

	ctx := engine.NewContext()
	s := NewSurface(ctx)
	err := s.Add(&Constraint{
		Kind:      KindPositionLimit,
		Hardness:  Hard,
		Direction: Upper,
		DimIndex:  0,
		Threshold: 10,
		Active:    true,
	})
	if err != nil {
		tst.Errorf("Add failed: %v", err)
		return
	}

	cases := []struct {
		x    float64
		want float64
	}{
		{9, 1},
		{10, 0},
		{11, -1},
	}
	for _, c := range cases {
		d := s.At(0).SignedDistance([]float64{c.x, 0})
		if math.Abs(d-c.want) > 1e-9 {
			tst.Errorf("signed distance at x=%v wrong: got %v want %v", c.x, d, c.want)
			return
		}
	}

	if !s.At(0).Violated([]float64{11, 0}) {
		tst.Errorf("x=11 should violate the upper constraint")
		return
	}
	if s.At(0).Violated([]float64{9, 0}) {
		tst.Errorf("x=9 should not violate the upper constraint")
		return
	}
}

func Test_surface02(tst *testing.T) {

	chk.PrintTitle("surface02 (65th constraint rejected, penalties, hard violation)")

	ctx := engine.NewContext()
	s := NewSurface(ctx)
	for i := 0; i < 64; i++ {
		err := s.Add(&Constraint{Direction: Upper, DimIndex: 0, Threshold: 100, Active: true})
		if err != nil {
			tst.Errorf("unexpected failure adding constraint %d: %v", i, err)
			return
		}
	}
	err := s.Add(&Constraint{Direction: Upper, DimIndex: 0, Threshold: 100, Active: true})
	if err == nil {
		tst.Errorf("65th constraint should have been rejected")
		return
	}

	s2 := NewSurface(ctx)
	s2.Add(&Constraint{Direction: Upper, DimIndex: 0, Threshold: 10, Hardness: Hard, Active: true})
	s2.Add(&Constraint{Direction: Lower, DimIndex: 1, Threshold: 0, Hardness: Soft, PenaltyRate: 2, Active: true})

	if !s2.AnyHardViolation([]float64{11, 5}) {
		tst.Errorf("hard violation should be detected")
		return
	}
	penalty := s2.TotalSoftPenalty([]float64{5, -3})
	if math.Abs(penalty-6) > 1e-9 {
		tst.Errorf("soft penalty wrong: got %v want 6", penalty)
		return
	}

	d, idx := s2.MinDistance([]float64{5, 5})
	if idx != 0 {
		tst.Errorf("most binding should be constraint 0, got %d", idx)
		return
	}
	if math.Abs(d-5) > 1e-9 {
		tst.Errorf("min distance wrong: got %v", d)
		return
	}
}
