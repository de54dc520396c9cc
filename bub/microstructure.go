// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bub implements the solver for the microstructure of grain-boundary bubbles:
// volume, projected area, number density and fractional coverage of lenticular bubbles
// growing by vacancy absorption and coalescing
package bub

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Input holds the data of the bubble microstructure problem
type Input struct {
	GasVolume     float64 // volume of gas per unit grain-boundary area [m³/m²]
	VacancyVolume float64 // volume of vacancies per unit grain-boundary area [m³/m²]
	Area0         float64 // projected area of bubbles at beginning of step [m²]
	Density0      float64 // number density of bubbles at beginning of step [bub/m²]
	Theta         float64 // semidihedral angle [rad]
	Phi           float64 // lenticular shape factor [-]
}

// Output holds the solution of the bubble microstructure problem
type Output struct {
	Volume     float64 // bubble volume [m³]
	Area       float64 // projected area [m²]
	Density    float64 // number density [bub/m²]
	Coverage   float64 // fractional coverage [-]
	Iterations int     // number of Newton iterations
	Residual   float64 // largest scaled residual; the geometry and coverage residuals are relative
}

// Solver holds the settings of the Newton iterations
type Solver struct {
	Tol   float64 // tolerance on the scaled residuals and on the relative correction
	MaxIt int     // max number of iterations
}

// Default is the solver used by the simulation
var Default = Solver{Tol: 1e-12, MaxIt: 100}

// Solve runs the default solver
func Solve(in Input) (Output, error) {
	return Default.Solve(in)
}

// ProjectedArea returns the projected area of a lenticular bubble with volume V
//
//   A = π·sin²θ·(3V/(4πφ))^(2/3)
//
func ProjectedArea(V, θ, φ float64) float64 {
	s := math.Sin(θ)
	return math.Pi * s * s * math.Pow(3.0*V/(4.0*math.Pi*φ), 2.0/3.0)
}

// Solve finds the joint root of
//
//   R1 = N·V - (Vg + Vv)                    mass balance
//   R2 = A - π·sin²θ·(3V/(4πφ))^(2/3)      lenticular geometry
//   R3 = N·(1 + 2·N0·(A - A0)) - N0         coalescence
//   R4 = F - N·A                            coverage
//
// Each iteration solves J·x_{k+1} = J·x_k - R(x_k), starting from the root of the equation
// obtained by eliminating N, A and F. The unknowns are scaled by the values obtained without
// coalescence. If the area decreases below A0, the density is held at N0 and the coverage is
// recomputed. N0 = 0 gives an empty microstructure. An error is returned if the iterations do
// not converge or give a non-positive volume or area
func (o Solver) Solve(in Input) (out Output, err error) {

	// no bubbles
	if in.Density0 <= 0 {
		return
	}

	// no gas and no vacancies
	Vt := in.GasVolume + in.VacancyVolume
	if Vt <= 0 {
		out.Density = in.Density0
		return
	}

	// reference values
	N0 := in.Density0
	Vs := Vt / N0
	As := ProjectedArea(Vs, in.Theta, in.Phi)
	a0 := in.Area0 / As
	c := N0 * As

	// area smaller than at the beginning of the step: density held
	if a0 >= 1 {
		out.Volume, out.Area, out.Density, out.Coverage = Vs, As, N0, c
		return
	}

	// predictor: root of g(v) = v - 2c·v^(2/3) - 1 + 2c·a0, convex with g(1) ≤ 0,
	// approached from the right where g((1+2c)³) ≥ 0 and g' > 0
	v := math.Pow(1.0+2.0*c, 3)
	for it := 0; it < o.MaxIt; it++ {
		g := v - 2.0*c*math.Pow(v, 2.0/3.0) - 1.0 + 2.0*c*a0
		dgdv := 1.0 - 4.0/3.0*c*math.Pow(v, -1.0/3.0)
		δ := g / dgdv
		v -= δ
		if math.Abs(δ) < o.Tol*v {
			break
		}
	}

	// initial values: v, a, n, F
	x := [4]float64{v, math.Pow(v, 2.0/3.0), 1.0 / v, c * math.Pow(v, -1.0/3.0)}

	var J [4][4]float64
	var R [4]float64
	held, converged := false, false
	for it := 0; it < o.MaxIt; it++ {
		v, a, n, F := x[0], x[1], x[2], x[3]

		// residuals and Jacobian
		R[0] = n*v - 1.0
		R[1] = a - math.Pow(v, 2.0/3.0)
		R[2] = n*(1.0+2.0*c*(a-a0)) - 1.0
		R[3] = F - c*n*a
		J = [4][4]float64{
			{n, 0, v, 0},
			{-2.0 / 3.0 * math.Pow(v, -1.0/3.0), 1, 0, 0},
			{0, 2.0 * c * n, 1.0 + 2.0*c*(a-a0), 0},
			{0, -c * n, -c * a, 1},
		}
		if held {
			R[2] = n - 1.0
			J[2] = [4]float64{0, 0, 1, 0}
		}
		out.Residual = maxAbs([]float64{R[0], R[1] / math.Max(a, 1), R[2], R[3] / math.Max(math.Abs(F), 1)})

		// right-hand side
		var b [4]float64
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				b[i] += J[i][j] * x[j]
			}
			b[i] -= R[i]
		}

		// solve
		xnew, e := Solve4(J, b)
		if e != nil {
			return out, chk.Err("bubble microstructure: iteration %d failed:\n%v", it, e)
		}

		// bubbles cannot shrink by coalescence
		if xnew[1] < a0 {
			held = true
			xnew[2] = 1
			xnew[3] = c * xnew[1]
		}

		// check convergence
		δ := 0.0
		for i := 0; i < 4; i++ {
			δ = math.Max(δ, math.Abs(xnew[i]-x[i])/math.Max(math.Abs(xnew[i]), 1e-30))
		}
		x = xnew
		out.Iterations = it + 1
		if δ < o.Tol && out.Residual < o.Tol {
			converged = true
			break
		}
	}

	// results
	out.Volume = x[0] * Vs
	out.Area = x[1] * As
	out.Density = x[2] * N0
	out.Coverage = x[3]
	if !converged {
		return out, chk.Err("bubble microstructure: no convergence after %d iterations (residual = %g)", out.Iterations, out.Residual)
	}
	if out.Volume <= 0 || out.Area <= 0 || out.Density <= 0 {
		return out, chk.Err("bubble microstructure: invalid solution V = %g, A = %g, N = %g", out.Volume, out.Area, out.Density)
	}
	return
}

// Solve4 solves the 4×4 system J·x = b by LU decomposition with partial pivoting.
// Non-finite coefficients are replaced by zero. An error is returned if J is singular
func Solve4(J [4][4]float64, b [4]float64) (x [4]float64, err error) {
	data := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			data[i*4+j] = finite(J[i][j])
		}
	}
	rhs := make([]float64, 4)
	for i := 0; i < 4; i++ {
		rhs[i] = finite(b[i])
	}
	var lu mat.LU
	lu.Factorize(mat.NewDense(4, 4, data))
	var sol mat.VecDense
	err = lu.SolveVecTo(&sol, false, mat.NewVecDense(4, rhs))
	if err != nil {
		if cond, ok := err.(mat.Condition); !ok || math.IsInf(float64(cond), 1) {
			return x, chk.Err("singular system:\n%v", err)
		}
		err = nil
	}
	for i := 0; i < 4; i++ {
		x[i] = sol.AtVec(i)
	}
	return
}

// finite returns v or zero if v is NaN or ±Inf
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// maxAbs returns the largest absolute value
func maxAbs(v []float64) (res float64) {
	for _, x := range v {
		res = math.Max(res, math.Abs(x))
	}
	return
}
