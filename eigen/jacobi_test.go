// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_jacobi01(tst *testing.T) {

	chk.PrintTitle("jacobi01 (diagonal matrix converges in <=1 sweep)")

	M := [][]float64{
		{4, 0, 0},
		{0, 2, 0},
		{0, 0, 1},
	}
	values, sweeps, err := Jacobi(M)
	if err != nil {
		tst.Errorf("jacobi failed: %v", err)
		return
	}
	if sweeps > 1 {
		tst.Errorf("diagonal matrix should converge in <=1 sweep, got %d", sweeps)
		return
	}
	want := []float64{4, 2, 1}
	for i, w := range want {
		if math.Abs(values[i]-w) > 1e-10 {
			tst.Errorf("eigenvalue %d wrong: got %v want %v", i, values[i], w)
			return
		}
	}
}

func Test_jacobi02(tst *testing.T) {

	chk.PrintTitle("jacobi02 (symmetric matrix with off-diagonal coupling)")

	M := [][]float64{
		{2, 1},
		{1, 2},
	}
	values, _, err := Jacobi(M)
	if err != nil {
		tst.Errorf("jacobi failed: %v", err)
		return
	}
	// eigenvalues of [[2,1],[1,2]] are 3 and 1
	want := []float64{3, 1}
	for i, w := range want {
		if math.Abs(values[i]-w) > 1e-9 {
			tst.Errorf("eigenvalue %d wrong: got %v want %v", i, values[i], w)
			return
		}
	}

	// original matrix untouched
	if M[0][1] != 1 {
		tst.Errorf("Jacobi must not mutate the input matrix")
		return
	}
}
