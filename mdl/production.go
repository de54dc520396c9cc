// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/mdl/gas"
	"github.com/cpmech/gofgr/state"
)

// GasProduction returns the record of the production of gas in system s
//
//  Prms: rate (at/m3 s)
func GasProduction(e *Env, s *gas.System) *Record {
	return NewRecord("Gas production - "+s.Name(), "").Add("rate", s.ProductionRate)
}

// GasDecay returns the record of the decay of gas in system s
//
//   dE/dt = P - λ·E     E: gas existing (produced and not decayed)
//
//  Prms: decay_rate (1/s), production_rate (at/m3 s)
func GasDecay(e *Env, s *gas.System) *Record {
	return NewRecord("Gas decay - "+s.Name(), "").
		Add("decay_rate", s.Gas.DecayRate).
		Add("production_rate", s.ProductionRate)
}

// IntraGranularBubbleEvolution returns the record of the density of intragranular bubbles
//
//   dN/dt = ν - b·N
//
//   0: no intragranular bubbles
//   1: nucleation and irradiation-induced resolution of the Xe system in UO2
//
//  Prms: resolution_rate, nucleation_rate
func IntraGranularBubbleEvolution(e *Env) (o *Record, err error) {
	o = NewRecord("Intragranular bubble evolution", "")
	switch e.Opts[state.IntraGranularBubbles] {
	case 0:
		return
	case 1:
		s := e.System(state.XeUO2)
		o.Ref = "Pizzocri et al., JNM 502 (2018) 323-330; White and Tucker, JNM 118 (1983) 1-38"
		o.Add("resolution_rate", s.ResolutionRate).Add("nucleation_rate", s.NucleationRate)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.IntraGranularBubbles)
}

// IntraBubbleRadius returns the radius of intragranular bubbles with volume V, assuming the
// Van der Waals volume of the gas fills a sphere (m)
//
//   r = (3V/4π)^(1/3) = 0.620350491·V^(1/3)
//
func IntraBubbleRadius(V float64) float64 {
	if V <= 0 {
		return 0
	}
	return 0.620350491 * math.Cbrt(V)
}

// GasDiffusion returns the record of the diffusion of gas in system s
//
//   1: equilibrium trapping and resolution; single population with effective diffusivity
//      D_eff = R/(R+T)·D + T/(R+T)·D_b
//      Prms: n_modes, diffusivity, radius, source, decay_rate
//
//   2: gas in solution and gas in bubbles exchanging atoms
//      Prms: n_modes, diffusivity, resolution_rate, trapping_rate, decay_rate, radius,
//            source_solution, source_bubbles, bubble_diffusivity
//
func GasDiffusion(e *Env, s *gas.System) (o *Record, err error) {
	o = NewRecord("Gas diffusion - "+s.Name(), "Speight, NSE 37 (1969) 180-185")
	D := s.EffectiveDiffusivity()
	switch e.Opts[state.DiffusionSolver] {
	case 1:
		R, T := s.ResolutionRate, s.TrappingRate
		Deff := D
		if R+T > 0 {
			Deff = R/(R+T)*D + T/(R+T)*s.BubbleDiffusivity
		}
		o.Add("n_modes", state.NumModes).
			Add("diffusivity", Deff).
			Add("radius", s.Radius).
			Add("source", s.ProductionRate).
			Add("decay_rate", s.Gas.DecayRate)
		return
	case 2:
		o.Ref = "Pizzocri et al., JNM 502 (2018) 323-330"
		o.Add("n_modes", state.NumModes).
			Add("diffusivity", D).
			Add("resolution_rate", s.ResolutionRate).
			Add("trapping_rate", s.TrappingRate).
			Add("decay_rate", s.Gas.DecayRate).
			Add("radius", s.Radius).
			Add("source_solution", s.ProductionRate).
			Add("source_bubbles", 0).
			Add("bubble_diffusivity", s.BubbleDiffusivity)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.DiffusionSolver)
}
