// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gofgr/mdl"
	"github.com/cpmech/gofgr/state"
)

// ratio returns a/b or zero if b is not positive
func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// figuresOfMerit computes the release fractions, the swelling and the pressures of
// grain-boundary bubbles
func figuresOfMerit(o *Context) (err error) {
	v := o.Vars

	// release
	released, produced := 0.0, 0.0
	for _, g := range []state.Gas{state.Xe, state.Kr} {
		released += v.Gas(g, state.Released).Final
		produced += v.Gas(g, state.Produced).Final
	}
	v.Set(state.FissionGasRelease, ratio(released, produced))
	rb := func(g state.Gas) float64 {
		return ratio(v.Gas(g, state.Released).Final, v.Gas(g, state.Produced).Final-v.Gas(g, state.Decayed).Final)
	}
	v.Set(state.Xe133RB, rb(state.Xe133))
	v.Set(state.Kr85mRB, rb(state.Kr85m))
	he := v.Gas(state.He, state.Released)
	v.Set(state.HeFractionalRelease, ratio(he.Final, v.Gas(state.He, state.Produced).Final))
	v.Set(state.HeReleaseRate, ratio(he.Increment(), o.Δt()))

	// swelling and pressures
	v.Set(state.InterSwelling, v.Final(state.InterIntactness)*o.SurfaceToVolume()*
		v.Final(state.InterBubbleConcentration)*v.Final(state.InterBubbleVolume))
	v.Set(state.InterBubblePressure, mdl.BubblePressure(o.Env))
	v.Set(state.OxygenPotential, mdl.OxygenPotential(o.Env))

	// rupture of bubbles
	if err = o.UO2.Update(o.Frame); err != nil {
		return
	}
	rec, err := mdl.CriticalPressure(o.Env)
	if err != nil {
		return
	}
	o.use(rec)
	keys := map[string]state.Key{
		"toughness":            state.FractureToughness,
		"fracture_stress":      state.FractureStress,
		"equilibrium_pressure": state.EquilibriumBubblePressure,
		"critical_pressure":    state.CriticalBubblePressure,
	}
	for name, k := range keys {
		if rec.Empty() {
			v.Set(k, 0)
			continue
		}
		v.Set(k, rec.Get(name))
	}
	return
}
