// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package slv implements the solvers used to advance state variables over a time step:
// closed-form rate equations, Newton-Raphson solvers for equilibrium relations, a quartic
// root finder and the spectral solvers for diffusion in a spherical grain.
//
// All functions are free of side effects and can be called concurrently.
package slv

import "math"

// Decay solves dy/dt = -λ·y + S over Δ
//
//   y = y0·exp(-λΔ) + (S/λ)·(1 - exp(-λΔ))     λ ≠ 0
//   y = y0 + S·Δ                                λ = 0
//
func Decay(y0, λ, S, Δ float64) float64 {
	if λ == 0 {
		return y0 + S*Δ
	}
	return y0*math.Exp(-λ*Δ) - (S/λ)*math.Expm1(-λ*Δ)
}

// Integrator solves dy/dt = r over Δ with constant r
func Integrator(y0, r, Δ float64) float64 {
	return y0 + r*Δ
}

// BinaryInteraction solves dy/dt = -k·y² over Δ
func BinaryInteraction(y0, k, Δ float64) float64 {
	return y0 / (1.0 + k*y0*Δ)
}

// LimitedGrowth solves dy/dt = k/y + S over Δ with the implicit (backward Euler) rule
//
//   y = ½·[(y0 + SΔ) + √((y0 + SΔ)² + 4kΔ)]
//
//  prms -- [k, S] : growth rate (k ≥ 0) and equilibrium term
//
// The result is the non-negative root; it grows towards the state where the growth
// term balances the equilibrium term (y = -k/S for S < 0)
func LimitedGrowth(y0 float64, prms []float64, Δ float64) float64 {
	k, S := prms[0], prms[1]
	b := y0 + S*Δ
	q := math.Sqrt(b*b + 4.0*k*Δ)
	if b < 0 {
		return 2.0 * k * Δ / (q - b)
	}
	return 0.5 * (b + q)
}

// EquilibriumFraction returns the fraction of gas in dynamic solution when resolution (R)
// and trapping (T) are at equilibrium: R/(R+T), or 1 if R+T = 0
func EquilibriumFraction(R, T float64) float64 {
	if R+T == 0 {
		return 1
	}
	return R / (R + T)
}
