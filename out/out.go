// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of simulations: tables of results, a database of
// snapshots, plots of histories and metrics of the solvers
package out

import (
	"github.com/cpmech/gofgr/sim"
	"github.com/cpmech/gofgr/state"
	"github.com/google/uuid"
)

// Results holds the histories of variables recorded after each step
type Results struct {
	Keys   []state.Key             // recorded variables
	Times  []float64               // times (h)
	Temps  []float64               // temperatures (K)
	Values map[state.Key][]float64 // values of each variable
	Steps  []int                   // step numbers
}

// NewResults returns a new container for the histories of keys. Nil keys means all variables
// flagged for output
func NewResults(keys []state.Key) (o *Results) {
	if keys == nil {
		keys = state.NewSet().Outputs()
	}
	o = &Results{Keys: keys, Values: make(map[state.Key][]float64)}
	return
}

// Append records the final values of the frame
func (o *Results) Append(f *state.Frame) {
	o.Times = append(o.Times, f.Hist.Time)
	o.Temps = append(o.Temps, f.Hist.T())
	o.Steps = append(o.Steps, f.Hist.Step)
	for _, k := range o.Keys {
		o.Values[k] = append(o.Values[k], f.Vars.Final(k))
	}
}

// Get returns the history of variable k; nil if k is not recorded
func (o *Results) Get(k state.Key) []float64 {
	return o.Values[k]
}

// Outputs handles the outputs of one simulation. Nil members are skipped
type Outputs struct {
	Results   *Results  // histories, for plots
	Table     *Table    // table of output variables
	Store     *Store    // database of snapshots
	Run       uuid.UUID // identifier of the run in Store
	WithModes bool      // store diffusion modes in snapshots
}

// OnStep records the frame after one step. It satisfies sim.StepFunc
func (o *Outputs) OnStep(f *state.Frame, rep *sim.Report) (err error) {
	if o.Results != nil {
		o.Results.Append(f)
	}
	if o.Table != nil {
		o.Table.Append(f)
	}
	if o.Store != nil {
		err = o.Store.Put(o.Run, f.Snapshot(o.WithModes))
	}
	return
}
