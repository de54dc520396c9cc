// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/cpmech/gosl/chk"

// Frame holds all containers of one simulation call
type Frame struct {
	Opts  Options  // model selectors
	Hist  *History // driving conditions
	Vars  *Set     // state variables
	Scale Scaling  // scaling factors
	Modes *Modes   // diffusion modes
}

// NewFrame returns a frame with default options, unit scaling factors and zero state
func NewFrame() *Frame {
	return &Frame{
		Opts:  DefaultOptions(),
		Hist:  NewHistory(),
		Vars:  NewSet(),
		Scale: DefaultScaling(),
		Modes: new(Modes),
	}
}

// Decode builds a frame from the flat arrays exchanged with the calling code.
//  opts  -- model selectors [NumOptions]
//  hist  -- history [NumHistory]
//  vars  -- state variables at fixed positions [NumVariables]
//  scale -- scaling factors [NumFactors]
//  modes -- diffusion modes [NumModeValues]
func Decode(opts []int, hist, vars, scale, modes []float64) (o *Frame, err error) {
	if len(opts) < int(NumOptions) {
		return nil, chk.Err("options array is too short: %d < %d", len(opts), NumOptions)
	}
	if len(hist) < NumHistory {
		return nil, chk.Err("history array is too short: %d < %d", len(hist), NumHistory)
	}
	if len(vars) < NumVariables {
		return nil, chk.Err("variables array is too short: %d < %d", len(vars), NumVariables)
	}
	if len(scale) < int(NumFactors) {
		return nil, chk.Err("scaling factors array is too short: %d < %d", len(scale), NumFactors)
	}
	if len(modes) < NumModeValues {
		return nil, chk.Err("modes array is too short: %d < %d", len(modes), NumModeValues)
	}
	o = NewFrame()
	copy(o.Opts[:], opts)
	copy(o.Scale[:], scale)
	o.Hist.Decode(hist)
	for k := Key(0); k < NumKeys; k++ {
		if idx := registry[k].index; idx >= 0 {
			o.Vars.At(k).Reset(vars[idx])
		}
	}
	o.Modes.Decode(modes)
	return
}

// Encode writes final values and modes back to the flat arrays
func (o *Frame) Encode(vars, modes []float64) (err error) {
	if len(vars) < NumVariables {
		return chk.Err("variables array is too short: %d < %d", len(vars), NumVariables)
	}
	if len(modes) < NumModeValues {
		return chk.Err("modes array is too short: %d < %d", len(modes), NumModeValues)
	}
	for k := Key(0); k < NumKeys; k++ {
		if idx := registry[k].index; idx >= 0 {
			vars[idx] = o.Vars.Final(k)
		}
	}
	o.Modes.Encode(modes)
	return
}

// Arrays allocates flat arrays holding the current contents of the frame (final values)
func (o *Frame) Arrays() (opts []int, hist, vars, scale, modes []float64) {
	opts = make([]int, NumOptions)
	copy(opts, o.Opts[:])
	hist = make([]float64, NumHistory)
	o.Hist.Encode(hist)
	vars = make([]float64, NumVariables)
	scale = make([]float64, NumFactors)
	copy(scale, o.Scale[:])
	modes = make([]float64, NumModeValues)
	o.Encode(vars, modes)
	return
}
