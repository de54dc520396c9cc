// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import "math"

// Result holds the outcome of an iterative solver
type Result struct {
	X         float64 // solution or best iterate
	It        int     // number of iterations performed
	Res       float64 // absolute value of the last residual
	Converged bool    // tolerance reached within MaxIt iterations
}

// Newton holds the settings of the Newton-Raphson solvers
type Newton struct {
	Tol   float64 // tolerance on the relative correction
	MaxIt int     // maximum number of iterations
}

// DefaultNewton holds the settings used by NewtonBlackburn and NewtonLangmuirBasedModel
var DefaultNewton = Newton{Tol: 1e-10, MaxIt: 50}

// NewtonBlackburn solves Blackburn's relation for the equilibrium stoichiometry deviation
// of hyperstoichiometric UO2+x
//
//   2·ln(x(x+2)/(1-x)) + 108·x² - 32700/T + 9.92 = ln(pO2)
//
//  prms -- [x0, T, pO2] : initial guess, temperature (K), oxygen partial pressure (atm)
//
//  Reference: Blackburn PE (1973) Oxygen pressures over fast breeder reactor fuel (I)
//             A model for UO2±x. Journal of Nuclear Materials 46 244-252
func NewtonBlackburn(prms []float64) Result {
	return DefaultNewton.Blackburn(prms)
}

// NewtonLangmuirBasedModel advances the stoichiometry deviation x over Δ with a Langmuir-type
// surface exchange driven towards the equilibrium deviation xeq (backward Euler)
//
//   x - y0 - Δ·K·(1 - θ(x)/θ(xeq)) = 0     θ(x) = αx/(1+αx)
//
//  prms -- [K, α, xeq] : exchange rate (1/s), adsorption constant, equilibrium deviation
func NewtonLangmuirBasedModel(y0 float64, prms []float64, Δ float64) Result {
	return DefaultNewton.LangmuirBasedModel(y0, prms, Δ)
}

// Blackburn implements NewtonBlackburn with the settings in o
func (o Newton) Blackburn(prms []float64) (r Result) {
	x, T, pO2 := prms[0], prms[1], prms[2]
	lnp := math.Log(pO2)
	f := func(x float64) float64 {
		return 2.0*math.Log(x*(x+2.0)/(1.0-x)) + 108.0*x*x - 32700.0/T + 9.92 - lnp
	}
	dfdx := func(x float64) float64 {
		return 2.0*(1.0/x+1.0/(x+2.0)+1.0/(1.0-x)) + 216.0*x
	}

	// f is increasing in (0,1); keep a bracket to guard the Newton steps. The residual is
	// accepted relative to the magnitude of the terms of f
	lo, hi := 0.0, 1.0
	if x <= lo || x >= hi {
		x = 1e-5
	}
	tolf := o.Tol * (1.0 + math.Abs(32700.0/T) + math.Abs(lnp))
	for r.It = 1; r.It <= o.MaxIt; r.It++ {
		fx := f(x)
		r.X, r.Res = x, math.Abs(fx)
		if r.Res <= tolf {
			r.Converged = true
			return
		}
		if fx > 0 {
			hi = x
		} else {
			lo = x
		}
		step := fx / dfdx(x)
		xnew := x - step
		if math.Abs(step) <= o.Tol*x && xnew > lo && xnew < hi {
			r.X, r.Res, r.Converged = xnew, math.Abs(f(xnew)), true
			return
		}
		if !(xnew > lo && xnew < hi) {
			xnew = 0.5 * (lo + hi)
		}
		x = xnew
	}
	r.It = o.MaxIt
	return
}

// LangmuirBasedModel implements NewtonLangmuirBasedModel with the settings in o
func (o Newton) LangmuirBasedModel(y0 float64, prms []float64, Δ float64) (r Result) {
	K, α, xeq := prms[0], prms[1], prms[2]
	θeq := α * xeq / (1.0 + α*xeq)
	if θeq == 0 || Δ == 0 {
		return Result{X: y0, Converged: true}
	}
	x := y0
	for r.It = 1; r.It <= o.MaxIt; r.It++ {
		θ := α * x / (1.0 + α*x)
		F := x - y0 - Δ*K*(1.0-θ/θeq)
		dθdx := α / ((1.0 + α*x) * (1.0 + α*x))
		dFdx := 1.0 + Δ*K*dθdx/θeq
		r.X, r.Res = x, math.Abs(F)
		xnew := x - F/dFdx
		if xnew < 0 {
			xnew = 0.5 * x
		}
		δ := math.Abs(xnew - x)
		x = xnew
		if δ <= o.Tol*math.Max(math.Abs(x), math.Abs(xeq)) {
			θ = α * x / (1.0 + α*x)
			r.X, r.Res, r.Converged = x, math.Abs(x-y0-Δ*K*(1.0-θ/θeq)), true
			return
		}
	}
	r.It = o.MaxIt
	return
}
