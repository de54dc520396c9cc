// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gofgr/state"
)

// GBVacancyDiffusivity returns the diffusivity of vacancies along grain boundaries (m2/s)
//
//   0: constant 1e-30
//   1: Reynolds and Burton, JNM 82 (1979) 22: 6.9e-4·exp(-5.35e-19/kT)
//
func GBVacancyDiffusivity(opts *state.Options, T float64) (float64, error) {
	switch opts[state.GrainBoundaryVacancyDiffusivity] {
	case 0:
		return 1e-30, nil
	case 1:
		if T <= 0 {
			return 0, nil
		}
		return 6.9e-4 * math.Exp(-5.35e-19/(Boltzmann*T)), nil
	}
	return 0, opts.InvalidSwitch(state.GrainBoundaryVacancyDiffusivity)
}

// ElasticModulus returns the elastic modulus of the fuel (MPa)
//
//   0: constant E0 = 223700 MPa
//   1: Lassmann and Moreno (1977), with porosity, temperature and burnup corrections
//
//   E = E0·(1 - 2.6p)·(1 - 1.394e-4·(T - 293.15))·(1 - 0.1506·(1 - exp(-0.035·Bu)))
//
func ElasticModulus(opts *state.Options, porosity, T, Bu float64) (float64, error) {
	const E0 = 223700.0
	switch opts[state.ElasticModulus] {
	case 0:
		return E0, nil
	case 1:
		return E0 * (1.0 - 2.6*porosity) * (1.0 - 1.394e-4*(T-273.15-20.0)) * (1.0 - 0.1506*(1.0-math.Exp(-0.035*Bu))), nil
	}
	return 0, opts.InvalidSwitch(state.ElasticModulus)
}

// SteamDissociation returns the oxygen partial pressure (atm) in equilibrium with steam at
// pressure p (atm) and temperature T (K), from H2O ⇌ H2 + ½O2 with small dissociation
//
//   ΔG = 246440 - 54.8·T (J/mol)    K = exp(-ΔG/RT)    pO2 = (K²·p²/4)^(1/3)
//
func SteamDissociation(T, p float64) float64 {
	if T <= 0 || p <= 0 {
		return 0
	}
	ΔG := 246440.0 - 54.8*T
	K := math.Exp(-ΔG / (GasConstant * T))
	return math.Cbrt(K * K * p * p / 4.0)
}

// BlackburnOxygenPressure returns the oxygen partial pressure (atm) in equilibrium with
// UO2+x at temperature T (Blackburn's relation). Returns 0 if x ≤ 0
//
//   ln(pO2) = 2·ln(x(x+2)/(1-x)) + 108x² - 32700/T + 9.92
//
func BlackburnOxygenPressure(x, T float64) float64 {
	if x <= 0 || x >= 1 || T <= 0 {
		return 0
	}
	return math.Exp(2.0*math.Log(x*(x+2.0)/(1.0-x)) + 108.0*x*x - 32700.0/T + 9.92)
}
