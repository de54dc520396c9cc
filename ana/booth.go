// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the numerical solvers
package ana

import "math"

// BoothRelease returns the fraction of gas released from a sphere of radius a with a constant
// and uniform source, starting from zero concentration, at the dimensionless time τ = D·t/a²
//
//   f(τ) = 1 - 6/(π⁴τ) · Σ (1 - exp(-n²π²τ)) / n⁴
//
//  Reference: Booth AH (1957) A method of calculating fission gas diffusion from UO2 fuel
//             and its application to the X-2-f loop test. AECL 496
func BoothRelease(τ float64, nterms int) float64 {
	if τ <= 0 {
		return 0
	}
	π2 := math.Pi * math.Pi
	sum := 0.0
	for n := nterms; n >= 1; n-- {
		n2 := float64(n * n)
		sum += -math.Expm1(-n2*π2*τ) / (n2 * n2)
	}
	return 1.0 - 6.0/(π2*π2*τ)*sum
}

// BoothRB returns the equilibrium release-to-birth ratio of a radioactive gas with decay
// constant λ diffusing out of a sphere of radius a, with μ = a·√(λ/D)
//
//   R/B = 3/μ² · (μ·coth(μ) - 1)
//
func BoothRB(μ float64) float64 {
	if μ < 1e-4 {
		return 1.0 - μ*μ/15.0
	}
	return 3.0 / (μ * μ) * (μ/math.Tanh(μ) - 1.0)
}

// SphereSteadyConcentration returns the volume-averaged steady concentration in a sphere of
// radius a with uniform source S, diffusivity D and zero concentration at the surface
func SphereSteadyConcentration(S, a, D float64) float64 {
	return S * a * a / (15.0 * D)
}

// DecayClosedForm returns the solution of dy/dt = -λy + S at t starting from y0 (λ > 0)
func DecayClosedForm(y0, λ, S, t float64) float64 {
	e := math.Exp(-λ * t)
	return y0*e + S/λ*(1.0-e)
}
