// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gofgr/mdl"
	"github.com/cpmech/gofgr/slv"
	"github.com/cpmech/gofgr/state"
)

// keys of atoms per intragranular bubble
var intraAtoms = map[state.Gas]state.Key{
	state.Xe: state.IntraXeAtomsPerBubble,
	state.Kr: state.IntraKrAtomsPerBubble,
	state.He: state.IntraHeAtomsPerBubble,
}

// burnup integrates the burnup, the irradiation time and the effective burnup
func burnup(o *Context) error {
	v, Δt := o.Vars, o.Δt()
	bu := o.use(mdl.Burnup(o.Env))
	v.Set(state.SpecificPower, bu.Get("specific_power"))
	v.Set(state.Burnup, slv.Integrator(v.Initial(state.Burnup), bu.Get("rate"), Δt))
	it := o.use(mdl.IrradiationTime(o.Env))
	v.Set(state.IrradiationTime, slv.Integrator(v.Initial(state.IrradiationTime), it.Get("rate"), Δt))
	eff := o.use(mdl.EffectiveBurnup(o.Env, bu))
	v.Set(state.EffectiveBurnup, slv.Integrator(v.Initial(state.EffectiveBurnup), eff.Get("rate"), Δt))
	return nil
}

// environment sets the oxygen partial pressure in the gap
func environment(o *Context) error {
	rec := o.use(mdl.EnvironmentComposition(o.Env))
	o.Vars.Set(state.GapOxygenPressure, rec.Get("gap_oxygen_pressure"))
	return nil
}

// thermochemistry computes the equilibrium stoichiometry deviation, advances the deviation and
// sets the oxygen partial pressure in the fuel
func thermochemistry(o *Context) (err error) {
	v := o.Vars
	rec := o.use(mdl.UO2Thermochemistry(o.Env))
	if rec.Empty() {
		v.Set(state.EquilibriumStoichiometry, 0)
	} else {
		v.Set(state.EquilibriumStoichiometry, o.newton(rec.Name, slv.NewtonBlackburn(rec.Values())))
	}
	if rec, err = mdl.StoichiometryDeviation(o.Env); err != nil {
		return
	}
	if o.use(rec).Empty() {
		v.At(state.StoichiometryDeviation).SetConstant()
	} else {
		x0 := v.Initial(state.StoichiometryDeviation)
		v.Set(state.StoichiometryDeviation, o.newton(rec.Name, slv.NewtonLangmuirBasedModel(x0, rec.Values(), o.Δt())))
	}
	v.Set(state.FuelOxygenPressure, mdl.FuelOxygenPressure(o.Env))
	return
}

// highBurnupStructure advances the restructured volume fraction and the porosity of the
// high burnup structure
func highBurnupStructure(o *Context) (err error) {
	v := o.Vars
	rec, err := mdl.HighBurnupStructureFormation(o.Env)
	if err != nil {
		return
	}
	if o.use(rec).Empty() {
		v.At(state.RestructuredFraction).SetConstant()
	} else {
		c := rec.Get("rate")
		v.Set(state.RestructuredFraction, slv.Decay(v.Initial(state.RestructuredFraction), c, c, v.At(state.EffectiveBurnup).Increment()))
	}
	if rec, err = mdl.HighBurnupStructurePorosity(o.Env); err != nil {
		return
	}
	if o.use(rec).Empty() {
		v.At(state.HBSPorosity).SetConstant()
		return
	}
	p := slv.Integrator(v.Initial(state.HBSPorosity), rec.Get("rate"), v.At(state.Burnup).Increment())
	v.Set(state.HBSPorosity, math.Min(p, rec.Get("max")))
	return
}

// grainGrowth advances the grain radius
func grainGrowth(o *Context) (err error) {
	rec, err := mdl.GrainGrowth(o.Env)
	if err != nil {
		return
	}
	if o.use(rec).Empty() {
		o.Vars.At(state.GrainRadius).SetConstant()
	} else {
		o.Vars.Set(state.GrainRadius, slv.QuarticEquation(rec.Values()))
	}
	o.UO2.GrainRadius = o.Vars.Final(state.GrainRadius)
	return
}

// sweeping removes from the grains the gas swept by the moving boundaries
func sweeping(o *Context) (err error) {
	rec, err := mdl.GrainBoundarySweeping(o.Env)
	if err != nil || o.use(rec).Empty() {
		return
	}
	swept := rec.Get("swept")
	if swept <= 0 {
		return
	}
	for _, s := range o.Systems {
		if s.Id.Restructured() {
			continue
		}
		for p := state.Population(0); p < state.NumPopulations; p++ {
			modes := o.Modes.Block(s.Id, p)
			for i := range modes {
				modes[i] = slv.Decay(modes[i], 1, 0, swept)
			}
		}
	}
	return
}

// production integrates the gas produced in each system. Gas produced in the high burnup
// structure is added to the total and tracked separately
func production(o *Context) (err error) {
	if err = o.UpdateSystems(); err != nil {
		return
	}
	v, Δt := o.Vars, o.Δt()
	for _, g := range o.Gases() {
		v.Gas(g, state.Produced).SetConstant()
	}
	v.At(state.XeProducedHBS).SetConstant()
	for _, s := range o.Systems {
		rate := o.use(mdl.GasProduction(o.Env, s)).Get("rate")
		prod := v.Gas(s.Id.Gas(), state.Produced)
		prod.Final = slv.Integrator(prod.Final, rate, Δt)
		if s.Id.Restructured() {
			v.Set(state.XeProducedHBS, slv.Integrator(v.Initial(state.XeProducedHBS), rate, Δt))
		}
	}
	return
}

// decay computes the decayed amount of radioactive gases. The gas existing at the end of the
// step follows from the existing gas at the beginning with constant production
func decay(o *Context) error {
	v := o.Vars
	for _, s := range o.Systems {
		if s.Id.Restructured() || s.Gas.Stable() {
			continue
		}
		rec := o.use(mdl.GasDecay(o.Env, s))
		g := s.Id.Gas()
		prod, decayed := v.Gas(g, state.Produced), v.Gas(g, state.Decayed)
		existing := slv.Decay(prod.Initial-decayed.Initial, rec.Get("decay_rate"), rec.Get("production_rate"), o.Δt())
		decayed.Final = prod.Final - existing
	}
	return nil
}

// intraGranularBubbles advances the density of intragranular bubbles and computes their
// radius and the swelling
func intraGranularBubbles(o *Context) (err error) {
	v := o.Vars
	rec, err := mdl.IntraGranularBubbleEvolution(o.Env)
	if err != nil {
		return
	}
	if o.use(rec).Empty() {
		v.Set(state.IntraBubbleConcentration, 0)
		v.Set(state.IntraBubbleRadius, 0)
		v.Set(state.IntraSwelling, 0)
		for _, k := range intraAtoms {
			v.Set(k, 0)
		}
		return
	}
	N := slv.Decay(v.Initial(state.IntraBubbleConcentration), rec.Get("resolution_rate"), rec.Get("nucleation_rate"), o.Δt())
	v.Set(state.IntraBubbleConcentration, N)
	volume := 0.0
	for _, s := range o.Systems {
		k, ok := intraAtoms[s.Id.Gas()]
		if !ok || s.Id.Restructured() {
			continue
		}
		atoms := 0.0
		if N > 0 {
			atoms = v.Gas(s.Id.Gas(), state.InBubbles).Final / N
		}
		v.Set(k, atoms)
		volume += atoms * s.Gas.VanDerWaalsVolume
	}
	r := mdl.IntraBubbleRadius(volume)
	v.Set(state.IntraBubbleRadius, r)
	v.Set(state.IntraSwelling, N*4.0/3.0*math.Pi*r*r*r)
	return
}

// diffusion advances the modes of each system and sets the gas in grain
func diffusion(o *Context) (err error) {
	if err = o.UpdateSystems(); err != nil {
		return
	}
	v, Δt := o.Vars, o.Δt()
	for _, s := range o.Systems {
		rec, err := mdl.GasDiffusion(o.Env, s)
		if err != nil {
			return err
		}
		if s.Radius <= 0 {
			continue
		}
		g := s.Id.Gas()
		var solution, bubbles float64
		switch o.Opts[state.DiffusionSolver] {
		case 1:
			total := slv.SpectralDiffusion(o.Modes.Block(s.Id, state.Total), o.use(rec).Values(), Δt)
			solution = total * slv.EquilibriumFraction(s.ResolutionRate, s.TrappingRate)
			bubbles = total - solution
		case 2:
			sol, bub := o.Modes.Block(s.Id, state.Solution), o.Modes.Block(s.Id, state.Bubbles)
			solution, bubbles = slv.SpectralDiffusionNonEquilibrium(sol, bub, o.use(rec).Values(), Δt)
		}
		if s.Id.Restructured() {
			v.Set(state.XeInGrainHBS, solution+bubbles)
			continue
		}
		v.Gas(g, state.InSolution).Final = solution
		v.Gas(g, state.InBubbles).Final = bubbles
		v.Gas(g, state.InGrain).Final = solution + bubbles
	}
	return
}

// microCracking advances the intactness of grain boundaries. Cracks remove bubbles from the
// boundaries; their gas is released
func microCracking(o *Context) (err error) {
	v := o.Vars
	rec, err := mdl.GrainBoundaryMicroCracking(o.Env)
	if err != nil {
		return
	}
	if o.use(rec).Empty() {
		v.At(state.InterIntactness).SetConstant()
		return
	}
	q0 := v.Initial(state.InterIntactness)
	q := slv.Decay(q0, rec.Get("cracking_rate"), 0, math.Abs(o.ΔT()))
	h := rec.Get("healing_rate")
	q = slv.Decay(q, h, h, v.At(state.Burnup).Increment())
	v.Set(state.InterIntactness, q)
	if q0 <= 0 {
		return
	}
	r := math.Min(1, q/q0)
	v.Set(state.InterCoverage, v.Final(state.InterCoverage)*r)
	v.Set(state.InterBubbleConcentration, v.Final(state.InterBubbleConcentration)*r)
	for _, g := range o.Gases() {
		gb := v.Gas(g, state.AtGrainBoundary)
		v.Gas(g, state.Released).Final += gb.Final * (1.0 - r)
		gb.Final *= r
	}
	return
}
