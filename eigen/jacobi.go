// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen implements the symmetric Jacobi eigensolver used by the
// calc package to diagonalize a Hessian. It operates on a private
// working copy and never mutates caller-owned storage.
package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
)

// maxSweeps is the sweep budget before the solver gives up
const maxSweeps = 100

// convergenceTol is the off-diagonal Frobenius mass below which the
// matrix is considered diagonalized
const convergenceTol = 1e-12

// sameDiagTol is the threshold below which M[p][p] and M[q][q] are
// treated as equal, forcing the rotation angle to pi/4
const sameDiagTol = 1e-15

// Jacobi diagonalizes the symmetric matrix M via the classical
// (largest-pivot) Jacobi rotation method: each sweep locates the largest-magnitude
// off-diagonal entry and zeroes it with a Givens rotation, repeating up
// to 100 sweeps or until the off-diagonal Frobenius mass falls below
// 1e-12. Returns the eigenvalues sorted algebraic-descending and the
// number of sweeps used. Never mutates M.
func Jacobi(matrix [][]float64) (eigenvalues []float64, sweeps int, err error) {
	n := len(matrix)
	M := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		copy(M[i], matrix[i])
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := offDiagonalMass(M)
		if off < convergenceTol {
			return diagonalSorted(M), sweep, nil
		}

		p, q := largestOffDiagonal(M)
		theta := rotationAngle(M, p, q)
		c, s := math.Cos(theta), math.Sin(theta)
		rotate(M, p, q, c, s)
	}

	return nil, maxSweeps, fmt.Errorf("jacobi: did not converge within %d sweeps", maxSweeps)
}

// offDiagonalMass returns sqrt(2 * sum_{i<j} M[i][j]^2)
func offDiagonalMass(M [][]float64) float64 {
	n := len(M)
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += M[i][j] * M[i][j]
		}
	}
	return math.Sqrt(2 * sum)
}

// largestOffDiagonal returns the (p,q), p<q, with the largest |M[p][q]|
func largestOffDiagonal(M [][]float64) (p, q int) {
	n := len(M)
	best := -1.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := math.Abs(M[i][j])
			if a > best {
				best, p, q = a, i, j
			}
		}
	}
	return
}

// rotationAngle computes the Givens angle that zeroes M[p][q]
func rotationAngle(M [][]float64, p, q int) float64 {
	if math.Abs(M[p][p]-M[q][q]) < sameDiagTol {
		return math.Pi / 4
	}
	return 0.5 * math.Atan2(2*M[p][q], M[q][q]-M[p][p])
}

// rotate applies the two-sided Givens rotation G(p,q,theta) to M in
// place: updates the two diagonal entries in closed form, updates every
// other row/column's (p,q) pair, and zeroes M[p][q]/M[q][p] exactly
func rotate(M [][]float64, p, q int, c, s float64) {
	n := len(M)
	app, aqq, apq := M[p][p], M[q][q], M[p][q]

	M[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
	M[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
	M[p][q] = 0
	M[q][p] = 0

	for k := 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		akp, akq := M[k][p], M[k][q]
		newKp := c*akp - s*akq
		newKq := s*akp + c*akq
		M[k][p], M[p][k] = newKp, newKp
		M[k][q], M[q][k] = newKq, newKq
	}
}

// diagonalSorted extracts the diagonal of M and sorts it
// algebraic-descending
func diagonalSorted(M [][]float64) []float64 {
	n := len(M)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = M[i][i]
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(d)))
	return d
}
