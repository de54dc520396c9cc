// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/mdl/crit"
	"github.com/cpmech/gofgr/mdl/mat"
	"github.com/cpmech/gofgr/state"
)

// CriticalPressure returns the record of the rupture of grain-boundary bubbles. The record is
// empty if no criterion is selected or the bubbles cannot be evaluated (no coverage or radius)
//
//   0: none
//   1: first criterion     2: second criterion     3: third criterion
//
//  Prms: toughness (MPa m½), fracture_stress (MPa), equilibrium_pressure (MPa),
//        critical_pressure (MPa)
func CriticalPressure(e *Env) (o *Record, err error) {
	o = NewRecord("Critical bubble pressure", "Jernkvist, JNM 537 (2020) 152225")
	name, ok := crit.NameByOption(e.Opts[state.CriticalPressure])
	if !ok {
		return nil, e.Opts.InvalidSwitch(state.CriticalPressure)
	}
	if name == "" {
		return
	}
	model, err := crit.New(name)
	if err != nil {
		return nil, err
	}
	m := e.UO2
	in := &crit.Input{
		Coverage:       e.Vars.Final(state.InterCoverage),
		Radius:         e.Vars.Final(state.InterBubbleRadius),
		Theta:          m.SemidihedralAngle,
		SurfaceTension: m.SurfaceTension,
		Stress:         e.Hist.At(state.HydrostaticStress).Final,
		Toughness:      crit.Toughness(m.ElasticModulus, m.FractureEnergy, m.PoissonRatio),
	}
	if !in.Valid() {
		return
	}
	o.Ref += " (" + name + " criterion)"
	o.Add("toughness", in.Toughness).
		Add("fracture_stress", crit.FractureStress(in)).
		Add("equilibrium_pressure", crit.EquilibriumPressure(in)*1e-6).
		Add("critical_pressure", model.Pressure(in)*1e-6)
	return
}

// BubblePressure returns the pressure of gas in grain-boundary bubbles (MPa), assuming the
// vacancies provide the free volume
//
//   p = kT·n_at/(n_v·Ω)
//
func BubblePressure(e *Env) float64 {
	nv := e.Vars.Final(state.InterVacanciesPerBubble)
	if nv <= 0 {
		return 0
	}
	return 1e-6 * mat.Boltzmann * e.T() * e.Vars.Final(state.InterAtomsPerBubble) / (nv * e.UO2.SchottkyVolume)
}

// OxygenPotential returns the oxygen potential of the fuel (kJ/mol)
//
//   ΔG_O2 = R·T·ln(pO2/p_ref)
//
func OxygenPotential(e *Env) float64 {
	pO2 := e.Vars.Final(state.FuelOxygenPressure)
	if pO2 <= 0 {
		return 0
	}
	return 1e-3 * mat.GasConstant * e.T() * math.Log(pO2/atmToMPa)
}
