// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxModes is the maximum number of terms of the spectral series
const MaxModes = 40

// sphereVolume is the volume of the unit sphere
const sphereVolume = 4.0 * math.Pi / 3.0

// projection holds the projection of a uniform source onto the eigenfunctions of the sphere,
//   p_n = -2·√(2/π)·(-1)ⁿ/n     n = 1, 2, ...
var projection [MaxModes]float64

func init() {
	for i := 0; i < MaxModes; i++ {
		n := float64(i + 1)
		sign := 1.0
		if (i+1)%2 == 1 {
			sign = -1.0
		}
		projection[i] = -2.0 * math.Sqrt(2.0/math.Pi) * sign / n
	}
}

// Projection returns the coefficient of mode n (1-based)
func Projection(n int) float64 {
	return projection[n-1]
}

// nmodes returns the number of modes to be used
func nmodes(n float64, size int) int {
	m := int(n)
	if m > size {
		m = size
	}
	if m > MaxModes {
		m = MaxModes
	}
	if m < 0 {
		m = 0
	}
	return m
}

// SpectralDiffusion advances the modes of a single population diffusing in a sphere
// with uniform source and sink, and returns the volume-averaged concentration
//
//   ∂C/∂t = D·∇²C + S - λ·C     C(a) = 0
//
//  prms -- [n, D, a, S, λ] : number of modes, diffusivity (m²/s), grain radius (m),
//                             source (at/m³s), decay rate (1/s)
//
// Each mode obeys dmₙ/dt = -(π²n²D/a² + λ)·mₙ + pₙ·S and is advanced with Decay. The
// steady state without decay is C = S·a²/(15D)
func SpectralDiffusion(modes []float64, prms []float64, Δ float64) float64 {
	N := nmodes(prms[0], len(modes))
	D, a, S, λ := prms[1], prms[2], prms[3], prms[4]
	rate := math.Pi * math.Pi * D / (a * a)
	for i := 0; i < N; i++ {
		n := float64(i + 1)
		modes[i] = Decay(modes[i], rate*n*n+λ, projection[i]*S, Δ)
	}
	return floats.Dot(projection[:N], modes[:N]) / sphereVolume
}

// SpectralDiffusionNonEquilibrium advances the modes of gas in solution (1) and gas in
// intragranular bubbles (2) exchanging atoms by trapping and resolution
//
//   ∂C₁/∂t = D₁·∇²C₁ - T·C₁ + R·C₂ - λ·C₁ + S₁
//   ∂C₂/∂t = D₂·∇²C₂ + T·C₁ - R·C₂ - λ·C₂ + S₂
//
//  prms -- [n, D₁, R, T, λ, a, S₁, S₂, D₂]
//
// Each pair of modes obeys y' = -M·y + pₙ·s and is advanced exactly with exp(-MΔ) and
// M⁻¹(I - exp(-MΔ)). Returns the volume-averaged concentrations
func SpectralDiffusionNonEquilibrium(sol, bub []float64, prms []float64, Δ float64) (solution, bubbles float64) {
	N := nmodes(prms[0], len(sol))
	if len(bub) < N {
		N = len(bub)
	}
	D1, R, T, λ, a, S1, S2, D2 := prms[1], prms[2], prms[3], prms[4], prms[5], prms[6], prms[7], prms[8]
	r1 := math.Pi * math.Pi * D1 / (a * a)
	r2 := math.Pi * math.Pi * D2 / (a * a)
	for i := 0; i < N; i++ {
		n2 := float64((i + 1) * (i + 1))
		M := mat2{r1*n2 + T + λ, -R, -T, r2*n2 + R + λ}
		E, P := expPhi(M, Δ)
		s1, s2 := projection[i]*S1, projection[i]*S2
		y1, y2 := sol[i], bub[i]
		sol[i] = E[0]*y1 + E[1]*y2 + P[0]*s1 + P[1]*s2
		bub[i] = E[2]*y1 + E[3]*y2 + P[2]*s1 + P[3]*s2
	}
	solution = floats.Dot(projection[:N], sol[:N]) / sphereVolume
	bubbles = floats.Dot(projection[:N], bub[:N]) / sphereVolume
	return
}

// mat2 is a 2×2 matrix stored by rows
type mat2 [4]float64

// expPhi returns E = exp(-MΔ) and P = M⁻¹(I - exp(-MΔ)) for a matrix with real eigenvalues,
// using the divided-difference form f(M) = f(μ₂)·I + f[μ₁,μ₂]·(M - μ₂·I)
func expPhi(M mat2, Δ float64) (E, P mat2) {
	tr := M[0] + M[3]
	det := M[0]*M[3] - M[1]*M[2]
	disc := (M[0]-M[3])*(M[0]-M[3]) + 4.0*M[1]*M[2]
	if disc < 0 {
		disc = 0
	}
	μ1 := 0.5 * (tr + math.Sqrt(disc))
	μ2 := 0.5 * (tr - math.Sqrt(disc))
	if μ1 != 0 {
		μ2 = det / μ1
	}

	f := func(μ float64) float64 { return math.Exp(-μ * Δ) }
	g := func(μ float64) float64 {
		if μ*Δ == 0 {
			return Δ
		}
		return -math.Expm1(-μ*Δ) / μ
	}

	var ddf, ddg float64
	if math.Abs(μ1-μ2) <= 1e-10*math.Max(math.Abs(μ1), math.Abs(μ2)) {
		μ := 0.5 * (μ1 + μ2)
		ddf = -Δ * math.Exp(-μ*Δ)
		x := μ * Δ
		if math.Abs(x) < 1e-4 {
			ddg = Δ * Δ * (-0.5 + x/3.0)
		} else {
			ddg = (x*math.Exp(-x) + math.Expm1(-x)) / (μ * μ)
		}
	} else {
		ddf = (f(μ1) - f(μ2)) / (μ1 - μ2)
		ddg = (g(μ1) - g(μ2)) / (μ1 - μ2)
	}

	f2, g2 := f(μ2), g(μ2)
	E = mat2{f2 + ddf*(M[0]-μ2), ddf * M[1], ddf * M[2], f2 + ddf*(M[3]-μ2)}
	P = mat2{g2 + ddg*(M[0]-μ2), ddg * M[1], ddg * M[2], g2 + ddg*(M[3]-μ2)}
	return
}
