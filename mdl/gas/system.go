// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gofgr/mdl/mat"
	"github.com/cpmech/gofgr/state"
)

// System holds the transport properties of a gas in a fuel matrix
type System struct {
	Id     state.System // key of the modes in state
	Gas    *Gas         // gas properties
	Matrix *mat.Matrix  // matrix properties

	// evaluated with the conditions at the end of the step
	Radius            float64 // grain radius (m)
	ProductionRate    float64 // (at/m3 s)
	Diffusivity       float64 // single-atom diffusivity (m2/s)
	BubbleDiffusivity float64 // diffusivity of intragranular bubbles (m2/s)
	ResolutionRate    float64 // (1/s)
	TrappingRate      float64 // (1/s)
	NucleationRate    float64 // (bub/m3 s)
}

// NewSystems allocates the systems selected by the options. hbs may be nil if the high burnup
// structure is not simulated
func NewSystems(f *state.Frame, uo2, hbs *mat.Matrix) (systems []*System, err error) {
	ids := []state.System{state.XeUO2, state.KrUO2}
	if f.Opts.On(state.Helium) {
		ids = append(ids, state.HeUO2)
	}
	if f.Opts.On(state.RadioactiveFissionGas) {
		ids = append(ids, state.Xe133UO2, state.Kr85mUO2)
	}
	switch f.Opts[state.FuelMatrix] {
	case 0:
	case 1:
		if hbs != nil {
			ids = append(ids, state.XeUO2HBS)
		}
	default:
		return nil, f.Opts.InvalidSwitch(state.FuelMatrix)
	}
	for _, id := range ids {
		s := &System{Id: id, Gas: Get(id.Gas()), Matrix: uo2}
		if id.Restructured() {
			s.Matrix = hbs
		}
		if err = s.Update(f); err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}
	return
}

// Name returns the name of the system; e.g. "Xe in UO2"
func (o *System) Name() string { return o.Id.String() }

// EffectiveDiffusivity returns the diffusivity of single atoms including the precursor factor
func (o *System) EffectiveDiffusivity() float64 {
	return o.Diffusivity * o.Gas.PrecursorFactor
}

// Update evaluates the properties with the conditions at the end of the step
func (o *System) Update(f *state.Frame) (err error) {

	// conditions
	T := f.Hist.T() * f.Scale[state.SfTemperature]
	F := f.Hist.F() * f.Scale[state.SfFissionRate]
	α := f.Vars.Final(state.RestructuredFraction)

	// grain radius
	o.Radius = f.Vars.Final(state.GrainRadius)
	if o.Id.Restructured() {
		o.Radius = o.Matrix.GrainRadius
	}

	// production
	switch {
	case o.Gas.Species == state.He:
		if o.ProductionRate, err = heliumProduction(f); err != nil {
			return
		}
	case o.Id.Restructured():
		o.ProductionRate = o.Gas.Yield * F * α
	default:
		o.ProductionRate = o.Gas.Yield * F * (1.0 - α)
	}

	// diffusivity
	if o.Gas.Species == state.He {
		switch f.Opts[state.HeliumDiffusivity] {
		case 0:
			o.Diffusivity = 1e-19
		case 1:
			o.Diffusivity = HeliumDiffusivity(T)
		default:
			return f.Opts.InvalidSwitch(state.HeliumDiffusivity)
		}
	} else {
		switch f.Opts[state.FissionGasDiffusivity] {
		case 0:
			o.Diffusivity = 7e-19
		case 1:
			o.Diffusivity = TurnbullDiffusivity(T, F)
		case 2:
			o.Diffusivity = TurnbullDiffusivity(T, F)
			if o.Id.Restructured() {
				o.Diffusivity = HBSDiffusivity(F)
			}
		default:
			return f.Opts.InvalidSwitch(state.FissionGasDiffusivity)
		}
	}
	o.Diffusivity *= f.Scale[state.SfDiffusivity]
	o.BubbleDiffusivity = 0

	// resolution
	r := f.Vars.Final(state.IntraBubbleRadius)
	switch f.Opts[state.ResolutionRate] {
	case 0:
		o.ResolutionRate = 1e-4
	case 1:
		o.ResolutionRate = IrradiationResolution(o.Matrix, r, F)
	default:
		return f.Opts.InvalidSwitch(state.ResolutionRate)
	}
	o.ResolutionRate *= f.Scale[state.SfResolutionRate]

	// trapping
	switch f.Opts[state.TrappingRate] {
	case 0:
		o.TrappingRate = 9.35e-6
	case 1:
		o.TrappingRate = 4.0 * math.Pi * o.Diffusivity * r * f.Vars.Final(state.IntraBubbleConcentration)
	default:
		return f.Opts.InvalidSwitch(state.TrappingRate)
	}
	o.TrappingRate *= f.Scale[state.SfTrappingRate]

	// nucleation
	switch f.Opts[state.NucleationRate] {
	case 0:
		o.NucleationRate = 4e20
	case 1:
		o.NucleationRate = 2.0 * 25.0 * F
	default:
		return f.Opts.InvalidSwitch(state.NucleationRate)
	}
	o.NucleationRate *= f.Scale[state.SfNucleationRate]
	return
}

// heliumProduction returns the production rate of helium (at/m3 s)
//
//   0: none
//   1: Cechet et al., NET 53 (2021) 1893: (2e21·Bu + 3e23)·q/86400, q = specific power (MW/kg)
//   2: constant 1e18
//
func heliumProduction(f *state.Frame) (rate float64, err error) {
	switch f.Opts[state.HeliumProductionRate] {
	case 0:
		return 0, nil
	case 1:
		rate = (2e21*f.Vars.Final(state.Burnup) + 3e23) * f.Vars.Final(state.SpecificPower) / 86400.0
	case 2:
		rate = 1e18
	default:
		return 0, f.Opts.InvalidSwitch(state.HeliumProductionRate)
	}
	return rate * f.Scale[state.SfHeliumProductionRate], nil
}

// TurnbullDiffusivity returns the single-atom diffusivity of Xe and Kr in UO2 (m2/s)
//
//   Turnbull et al. (1988): intrinsic + irradiation-enhanced + athermal terms
//
func TurnbullDiffusivity(T, F float64) float64 {
	if T <= 0 {
		return 8e-40 * F
	}
	kT := mat.Boltzmann * T
	D1 := 7.6e-10 * math.Exp(-4.86e-19/kT)
	D2 := 4.0 * 1.41e-25 * math.Sqrt(F) * math.Exp(-1.91e-19/kT)
	D3 := 8e-40 * F
	return D1 + D2 + D3
}

// HeliumDiffusivity returns the single-atom diffusivity of He in UO2 (m2/s)
//
//   Luzzi et al. (2018): 2e-10·exp(-24603.4/T)
//
func HeliumDiffusivity(T float64) float64 {
	if T <= 0 {
		return 0
	}
	return 2e-10 * math.Exp(-24603.4/T)
}

// HBSDiffusivity returns the single-atom diffusivity of Xe in the high burnup structure (m2/s)
//
//   Barani et al. (2020): 4.5e-42·F
//
func HBSDiffusivity(F float64) float64 {
	return 4.5e-42 * F
}

// IrradiationResolution returns the irradiation-induced resolution rate from intragranular
// bubbles with radius r (Turnbull, 1971)
//
//   b = 2π·l_ff·(r + r_ff)²·F
//
func IrradiationResolution(m *mat.Matrix, r, F float64) float64 {
	return 2.0 * math.Pi * m.FFRange * math.Pow(r+m.FFInfluenceRadius, 2) * F
}
