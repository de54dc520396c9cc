// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// QuarticEquation returns the physical root of
//
//   a·y⁴ + b·y³ + c·y² + d·y + e = 0
//
//  prms -- [a, b, c, d, e, lower]
//
// The physical root is the smallest positive real root not below lower (the value at the
// beginning of the step, since the quantity cannot decrease). If no root qualifies, lower
// is returned
func QuarticEquation(prms []float64) float64 {
	a, b, c, d, e, lower := prms[0], prms[1], prms[2], prms[3], prms[4], prms[5]
	roots := PolyRoots([]float64{a, b, c, d, e})
	best := math.Inf(1)
	for _, z := range roots {
		if !isReal(z) {
			continue
		}
		re := real(z)
		if re <= 0 || re < lower*(1.0-1e-10) {
			continue
		}
		if re < best {
			best = re
		}
	}
	if math.IsInf(best, 1) {
		return lower
	}
	return math.Max(lower, polish([]float64{a, b, c, d, e}, best))
}

// PolyRoots returns all (complex) roots of the polynomial with coefficients given
// from the highest degree down. The roots are the eigenvalues of the companion matrix
func PolyRoots(coef []float64) []complex128 {
	for len(coef) > 1 && coef[0] == 0 {
		coef = coef[1:]
	}
	n := len(coef) - 1
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []complex128{complex(-coef[1]/coef[0], 0)}
	}
	C := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		C.Set(0, j, -coef[j+1]/coef[0])
	}
	for i := 1; i < n; i++ {
		C.Set(i, i-1, 1)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(C, mat.EigenNone); !ok {
		return nil
	}
	return eig.Values(nil)
}

// polyEval returns p(x) and p'(x) by Horner's rule
func polyEval(coef []float64, x float64) (p, dp float64) {
	for _, c := range coef {
		dp = dp*x + p
		p = p*x + c
	}
	return
}

// polish refines a real root with a few Newton steps
func polish(coef []float64, x float64) float64 {
	for it := 0; it < 5; it++ {
		p, dp := polyEval(coef, x)
		if dp == 0 {
			break
		}
		xnew := x - p/dp
		if math.IsNaN(xnew) || math.Abs(xnew-x) > 1e-3*math.Abs(x) {
			break
		}
		if xnew == x {
			break
		}
		x = xnew
	}
	return x
}

// isReal tells whether z has a negligible imaginary part relative to its modulus
func isReal(z complex128) bool {
	return math.Abs(imag(z)) <= 1e-6*cmplx.Abs(z)
}
