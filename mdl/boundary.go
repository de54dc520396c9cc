// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/mdl/mat"
	"github.com/cpmech/gofgr/state"
)

// constants of micro-cracking and healing of grain boundaries
const (
	crackSteepness = 10.0   // steepness of the sigmoid of the cracked fraction
	crackSpan      = 0.8814 // burnup span of the healing process (MWd/kgUO2)
)

// GrainBoundaryMicroCracking returns the record of the intactness of grain boundaries.
// Cracking follows the derivative of a sigmoid of the temperature centred at T_inf; healing
// proceeds with burnup above the healing temperature
//
//   dq/dT = -μ·q                 μ = (s/T_inf)·e^x/(1 + e^x)²   x = s·(T - T_inf)/T_inf
//   dq/dBu = -h·q + h            h = 1/0.8814 if T ≥ T_heal
//   T_inf = 1773 + 520·exp(-Bu/(10·0.8814))
//
//  Prms: cracking_rate (1/K), healing_rate (1/(MWd/kgUO2))
func GrainBoundaryMicroCracking(e *Env) (o *Record, err error) {
	o = NewRecord("Grain-boundary micro-cracking", "Barani et al., JNM 486 (2017) 96-110")
	switch e.Opts[state.GrainBoundaryMicroCracking] {
	case 0:
		return
	case 1:
		T, Bu := e.T(), e.Vars.Final(state.Burnup)
		Tinf := 1773.0 + 520.0*math.Exp(-Bu/(10.0*crackSpan))
		x := crackSteepness * (T - Tinf) / Tinf
		ex := math.Exp(-math.Abs(x))
		μ := (crackSteepness / Tinf) * ex / ((1.0 + ex) * (1.0 + ex))
		h := 0.0
		if T >= e.UO2.HealingTemperature {
			h = 1.0 / crackSpan
		}
		o.Add("cracking_rate", μ).Add("healing_rate", h)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.GrainBoundaryMicroCracking)
}

// SinkStrength returns the approximation of the inverse sink strength of a grain boundary
// with fractional coverage F
//
//   1/S ≈ 0.4054 + 20.594F - 99.993F² + 690.91F³ - 1599.2F⁴ + 1830.1F⁵
//   S = -¼·((1 - F)(3 - F) + 2·ln(F))
//
func SinkStrength(F float64) float64 {
	return 0.4054 + F*(20.594+F*(-99.993+F*(690.91+F*(-1599.2+F*1830.1))))
}

// GrainBoundaryVacancies returns the record of the absorption of vacancies by grain-boundary
// bubbles with atoms n_at per bubble, radius r and fractional coverage F
//
//   dn_v/dt = k/n_v + S
//   k = 2π·δ·D_v·ζ(F)·n_at/Ω      S = -2π·δ·D_v·ζ(F)·(2γ/r - σ)/(kT)
//
//  Prms: growth_rate, equilibrium_term   (LimitedGrowth)
func GrainBoundaryVacancies(e *Env, atoms, radius, coverage float64) (o *Record, err error) {
	o = NewRecord("Intergranular bubble evolution", "")
	switch e.Opts[state.GrainBoundaryBehaviour] {
	case 0:
		o.Add("growth_rate", 0).Add("equilibrium_term", 0)
		return
	case 1:
		m := e.UO2
		flow := 2.0 * math.Pi * m.GBThickness * m.GBVacancyDiffusivity * SinkStrength(coverage)
		k := flow * atoms / m.SchottkyVolume
		S := 0.0
		if kT := mat.Boltzmann * e.T(); radius > 0 && kT > 0 {
			peq := 2.0*m.SurfaceTension/radius - e.Hist.At(state.HydrostaticStress).Final*1e6
			S = -flow * peq / kT
		}
		o.Ref = "White, JNM 325 (2004) 61-77; Pastore et al., JNM 456 (2015) 156-169"
		o.Add("growth_rate", k).Add("equilibrium_term", S)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.GrainBoundaryBehaviour)
}

// GrainBoundaryVenting returns the record of the venting of grain boundaries. The vented
// fraction is a sigmoid of the fractional coverage
//
//   f_v(F) = 1/(1 + a·exp(-b·(F - c)))^(1/a)
//
//  Prms: screw, span, cent
func GrainBoundaryVenting(e *Env) *Record {
	return NewRecord("Grain-boundary venting", "Pizzocri et al., D6.4 (2020), H2020 Project INSPYRE").
		Add("screw", 0.1*e.Scale[state.SfScrewParameter]).
		Add("span", 10.0*e.Scale[state.SfSpanParameter]).
		Add("cent", 0.43*e.Scale[state.SfCentParameter])
}

// VentedFraction evaluates the sigmoid of the venting record at coverage F
func VentedFraction(venting *Record, F float64) float64 {
	a, b, c := venting.Get("screw"), venting.Get("span"), venting.Get("cent")
	return 1.0 / math.Pow(1.0+a*math.Exp(-b*(F-c)), 1.0/a)
}

// VentingProbability returns the probability for gas at the grain boundaries to be vented,
// given the intactness q and the vented fraction f_v
//
//   P = (1 - q) + q·f_v
//
func VentingProbability(intactness, vented float64) float64 {
	return (1.0 - intactness) + intactness*vented
}

// SaturationCoverage returns the fractional coverage above which bubbles interconnect,
// reduced by the intactness q if micro-cracking is active
func SaturationCoverage(e *Env) float64 {
	const Fsat = 0.5
	if e.Opts.On(state.GrainBoundaryMicroCracking) {
		return Fsat * e.Vars.Final(state.InterIntactness)
	}
	return Fsat
}

// GasRelease returns the record of the inventory of gas at the grain boundaries when gas is
// vented. P0 and P1 are the venting probabilities at the beginning and at the end of the step;
// Δavailable is the increment of gas that left the grains
//
//   dGB/dt = -(ΔP/Δt)·GB + (1 - P1)·Δavailable/Δt
//
//  Prms: decay_rate, source_rate
func GasRelease(e *Env, g state.Gas, P0, P1, Δavailable float64) *Record {
	o := NewRecord("Gas release - "+g.String(), "Pizzocri et al., D6.4 (2020), H2020 Project INSPYRE")
	Δt := e.Δt()
	if Δt <= 0 {
		return o.Add("decay_rate", 0).Add("source_rate", 0)
	}
	return o.Add("decay_rate", math.Max(0, P1-P0)/Δt).Add("source_rate", (1.0-P1)*Δavailable/Δt)
}
