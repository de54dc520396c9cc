// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/mdl/mat"
	"github.com/cpmech/gofgr/state"
)

// atm to MPa
const atmToMPa = 0.1013

// below this temperature the oxygen exchange with the environment is frozen (K)
const thermochemistryThreshold = 1000.0

// EnvironmentComposition returns the record of the oxygen partial pressure in the gap, from the
// dissociation of steam
//
//  Prms: gap_oxygen_pressure (atm)
func EnvironmentComposition(e *Env) *Record {
	steam := e.Hist.At(state.SteamPressure).Final
	return NewRecord("Environment composition", "Lindemer, JNM (1980)").
		Add("gap_oxygen_pressure", mat.SteamDissociation(e.T(), steam))
}

// UO2Thermochemistry returns the record of the equilibrium stoichiometry deviation. The record
// is empty if the temperature is too low or there is no oxygen in the gap
//
//  Prms: initial_guess, temperature, gap_oxygen_pressure
func UO2Thermochemistry(e *Env) *Record {
	o := NewRecord("UO2 thermochemistry", "Blackburn, JNM 46 (1973) 244-252")
	T, pO2 := e.T(), e.Vars.Final(state.GapOxygenPressure)
	if T <= thermochemistryThreshold || pO2 <= 0 {
		return o
	}
	x0 := e.Vars.Initial(state.EquilibriumStoichiometry)
	if x0 <= 0 || x0 >= 1 {
		x0 = 1e-5
	}
	return o.Add("initial_guess", x0).Add("temperature", T).Add("gap_oxygen_pressure", pO2)
}

// StoichiometryDeviation returns the record of the surface exchange of oxygen with the
// environment. The record is empty if the deviation is held
//
//   0: held
//   1: Langmuir-based surface exchange; K = 0.365·exp(-23500/T)·√p_steam·(3/a), α = 100
//
//  Prms: rate, adsorption, equilibrium
func StoichiometryDeviation(e *Env) (o *Record, err error) {
	o = NewRecord("Stoichiometry deviation", "")
	switch e.Opts[state.StoichiometryDeviationModel] {
	case 0:
		return
	case 1:
		T, steam := e.T(), e.Hist.At(state.SteamPressure).Final
		if T <= thermochemistryThreshold || steam <= 0 {
			return
		}
		o.Ref = "Cheng et al., JNM 427 (2012) 396-405"
		K := 0.365 * math.Exp(-23500.0/T) * math.Sqrt(steam) * e.SurfaceToVolume()
		o.Add("rate", K).Add("adsorption", 100).Add("equilibrium", e.Vars.Final(state.EquilibriumStoichiometry))
		return
	}
	return nil, e.Opts.InvalidSwitch(state.StoichiometryDeviationModel)
}

// FuelOxygenPressure returns the oxygen partial pressure in the fuel (MPa)
func FuelOxygenPressure(e *Env) float64 {
	return mat.BlackburnOxygenPressure(e.Vars.Final(state.StoichiometryDeviation), e.T()) * atmToMPa
}
