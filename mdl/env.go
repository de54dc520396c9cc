// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gofgr/mdl/gas"
	"github.com/cpmech/gofgr/mdl/mat"
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/fun/dbf"
)

// Env holds the containers read by the construction routines
type Env struct {
	*state.Frame
	UO2     *mat.Matrix   // fuel matrix
	HBS     *mat.Matrix   // high burnup structure; nil if not simulated
	Systems []*gas.System // active gas-in-matrix systems
}

// NewEnv allocates matrices and systems for the conditions in f. prms overrides the
// default properties of the fuel matrices
func NewEnv(f *state.Frame, prms dbf.Params) (o *Env, err error) {
	o = &Env{Frame: f}
	if o.UO2, err = mat.UO2(f); err != nil {
		return nil, err
	}
	if err = o.UO2.Init(prms); err != nil {
		return nil, err
	}
	if f.Opts[state.FuelMatrix] == 1 {
		o.HBS = o.UO2.Restructured()
	}
	o.Systems, err = gas.NewSystems(f, o.UO2, o.HBS)
	return
}

// Δt returns the time step (s)
func (o *Env) Δt() float64 {
	return o.Hist.TimeStep
}

// System returns the system id or nil if it is not active
func (o *Env) System(id state.System) *gas.System {
	for _, s := range o.Systems {
		if s.Id == id {
			return s
		}
	}
	return nil
}

// Gases returns the gases transported in UO2 (one per system, restructured systems excluded)
func (o *Env) Gases() (gases []state.Gas) {
	for _, s := range o.Systems {
		if !s.Id.Restructured() {
			gases = append(gases, s.Id.Gas())
		}
	}
	return
}

// UpdateSystems re-evaluates the properties of all systems
func (o *Env) UpdateSystems() (err error) {
	for _, s := range o.Systems {
		if err = s.Update(o.Frame); err != nil {
			return
		}
	}
	return
}

// SurfaceToVolume returns the grain-boundary surface per unit volume 3/a (1/m); zero if a = 0
func (o *Env) SurfaceToVolume() float64 {
	a := o.Vars.Final(state.GrainRadius)
	if a <= 0 {
		return 0
	}
	return 3.0 / a
}

// T returns the scaled temperature at the end of the step (K)
func (o *Env) T() float64 {
	return o.Hist.T() * o.Scale[state.SfTemperature]
}

// F returns the scaled fission rate at the end of the step (fiss/m3 s)
func (o *Env) F() float64 {
	return o.Hist.F() * o.Scale[state.SfFissionRate]
}

// ΔT returns the increment of the scaled temperature over the step (K)
func (o *Env) ΔT() float64 {
	return o.Hist.At(state.Temperature).Increment() * o.Scale[state.SfTemperature]
}
