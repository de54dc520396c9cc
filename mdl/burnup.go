// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/gofgr/state"

// energy per fission times the unit conversion to MW (MJ/fiss)
const fissionEnergy = 3.12e-17

// Burnup returns the record of the local burnup
//
//   q = F·E_f/ρ (MW/kg)    dBu/dt = q/86400 (MWd/kg s)
//
//  Prms: specific_power, rate
func Burnup(e *Env) *Record {
	ρ := e.Vars.Final(state.FuelDensity)
	if ρ <= 0 {
		ρ = e.UO2.TheoreticalDensity
	}
	q := e.F() * fissionEnergy / ρ
	return NewRecord("Burnup", "").
		Add("specific_power", q).
		Add("rate", q/86400.0)
}

// IrradiationTime returns the record of the irradiation time (h); it advances only under
// irradiation
//
//  Prms: rate
func IrradiationTime(e *Env) *Record {
	rate := 0.0
	if e.F() > 0 {
		rate = 1.0 / 3600.0
	}
	return NewRecord("Irradiation time", "").Add("rate", rate)
}

// EffectiveBurnup returns the record of the burnup accumulated below the threshold temperature
// for the formation of the high burnup structure
//
//  Prms: rate
func EffectiveBurnup(e *Env, burnup *Record) *Record {
	rate := 0.0
	if e.T() < hbsTemperature {
		rate = burnup.Get("rate")
	}
	return NewRecord("Effective burnup", "Khvostov et al., Nucl Eng Des 241 (2011)").Add("rate", rate)
}
