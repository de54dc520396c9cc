// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
)

// Point holds the driving conditions at one time of a piecewise-linear history
type Point struct {
	Time   float64 `json:"time"`   // time (h)
	T      float64 `json:"T"`      // temperature (K)
	F      float64 `json:"F"`      // fission rate (fiss/m3 s)
	Stress float64 `json:"stress"` // hydrostatic stress (MPa)
	Steam  float64 `json:"steam"`  // steam pressure (atm)
}

// value returns the history variable k
func (o Point) value(k state.HistKey) float64 {
	switch k {
	case state.Temperature:
		return o.T
	case state.FissionRate:
		return o.F
	case state.HydrostaticStress:
		return o.Stress
	}
	return o.Steam
}

// interp returns the point at s ∈ [0,1] between a and b
func interp(a, b Point, s float64) Point {
	lin := func(x, y float64) float64 { return x + s*(y-x) }
	return Point{lin(a.Time, b.Time), lin(a.T, b.T), lin(a.F, b.F), lin(a.Stress, b.Stress), lin(a.Steam, b.Steam)}
}

// StepFunc is called after each successful step with the updated frame
type StepFunc func(f *state.Frame, rep *Report) error

// Driver advances a frame over a piecewise-linear history. Each interval between points is
// divided into NumSub steps; the state goes through the flat arrays between steps
type Driver struct {
	Frame  *state.Frame // state; replaced after each step
	Points []Point      // history
	NumSub int          // number of steps per interval; 0 means 1
	Cfg    *Config      // settings of each call; may be nil
	OnStep StepFunc     // called after each step; may be nil

	// results
	Steps        int // number of steps run
	NonConverged int // number of steps with a solver stopped at the iteration cap
}

// NewDriver returns a new driver for frame f
func NewDriver(f *state.Frame, points []Point, nsub int, cfg *Config) (o *Driver, err error) {
	if len(points) < 2 {
		return nil, chk.Err("history must have at least two points; %d given", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Time < points[i-1].Time {
			return nil, chk.Err("times of history must not decrease: t[%d] = %g < t[%d] = %g", i, points[i].Time, i-1, points[i-1].Time)
		}
	}
	if nsub < 1 {
		nsub = 1
	}
	return &Driver{Frame: f, Points: points, NumSub: nsub, Cfg: cfg}, nil
}

// Run runs all steps
func (o *Driver) Run() (err error) {
	opts, hist, vars, scale, modes := o.Frame.Arrays()
	for i := 1; i < len(o.Points); i++ {
		a, b := o.Points[i-1], o.Points[i]
		for j := 0; j < o.NumSub; j++ {
			p0 := interp(a, b, float64(j)/float64(o.NumSub))
			p1 := interp(a, b, float64(j+1)/float64(o.NumSub))

			// history
			h := o.Frame.Hist
			for k := state.HistKey(0); k < state.NumHistVars; k++ {
				h.At(k).Initial = p0.value(k)
				h.At(k).Final = p1.value(k)
			}
			h.Time = p1.Time
			h.Step++
			h.TimeStep = (p1.Time - p0.Time) * 3600.0
			h.Encode(hist)

			// step
			var rep *Report
			rep, err = Run(opts, hist, vars, scale, modes, o.Cfg)
			if err != nil {
				return chk.Err("step %d (t = %g h) failed:\n%v", h.Step, h.Time, err)
			}
			if o.Frame, err = state.Decode(opts, hist, vars, scale, modes); err != nil {
				return
			}
			o.Steps++
			if rep.NonConverged() {
				o.NonConverged++
			}
			if o.OnStep != nil {
				if err = o.OnStep(o.Frame, rep); err != nil {
					return
				}
			}
		}
	}
	return
}
