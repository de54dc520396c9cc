// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/state"
)

// GrainGrowth returns the record of the grain radius. The backward Euler step of
//
//   dR/dt = k·(1/R - 1/R_l)
//
// is the quartic R⁴ + (kΔ/R_l - R0)·R³ - kΔ·R² = 0 whose root is bounded by R0 from below
//
//  Prms: a, b, c, d, e, lower   (QuarticEquation)
func GrainGrowth(e *Env) (o *Record, err error) {
	o = NewRecord("Grain growth", "Ainscough et al., JNM 49 (1973) 117-128")
	R0 := e.Vars.Initial(state.GrainRadius)
	switch e.Opts[state.GrainGrowth] {
	case 0:
		return
	case 1:
		T := e.T()
		k, Rl := 0.0, 0.0
		if T > 0 {
			k = 1.455e-8 * math.Exp(-32114.5/T) / 4.0
			Rl = 0.5 * 2.23e-3 * math.Exp(-7620.0/T)
		}
		if R0 >= Rl {
			k = 0
		}
		kΔ := k * e.Δt()
		b := -R0
		if kΔ > 0 {
			b += kΔ / Rl
		}
		o.Add("a", 1).Add("b", b).Add("c", -kΔ).Add("d", 0).Add("e", 0).Add("lower", R0)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.GrainGrowth)
}

// GrainBoundarySweeping returns the record of the fraction of grain swept by the moving
// boundaries; swept gas is removed from the grain
//
//   dC/dt = -C·(3/R)·dR/dt   ⇒   C1 = C0·exp(-3·ln(R1/R0))
//
//  Prms: swept (the decay argument 3·ln(R1/R0))
func GrainBoundarySweeping(e *Env) (o *Record, err error) {
	o = NewRecord("Grain-boundary sweeping", "Van Uffelen et al., JNM 434 (2013) 287-290")
	switch e.Opts[state.GrainBoundarySweeping] {
	case 0:
		return
	case 1:
		R0, R1 := e.Vars.Initial(state.GrainRadius), e.Vars.Final(state.GrainRadius)
		swept := 0.0
		if R0 > 0 && R1 > R0 {
			swept = 3.0 * math.Log(R1/R0)
		}
		o.Add("swept", swept)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.GrainBoundarySweeping)
}
