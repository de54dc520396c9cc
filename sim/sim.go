// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the simulation of the behaviour of fission gases over one time step
// and a driver for histories with many steps
package sim

import (
	"github.com/cpmech/gofgr/mdl"
	"github.com/cpmech/gofgr/slv"
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// defaults of the fixed point for the grain-boundary microstructure
const (
	DefaultTol   = 1e-2
	DefaultMaxIt = 500
)

// Tracer receives diagnostic messages
type Tracer func(format string, args ...interface{})

// Recorder receives the report of each successful call
type Recorder interface {
	Observe(r *Report)
}

// Config holds the settings of one simulation call. A nil Config means defaults
type Config struct {
	Tol      float64    // tolerance of the fixed point; 0 means DefaultTol
	MaxIt    int        // maximum number of iterations of the fixed point; 0 means DefaultMaxIt
	Verbose  bool       // trace records and iterations with io.Pforan if Trace is nil
	Trace    Tracer     // receives records and iterations of the fixed point
	Matrix   dbf.Params // properties of the fuel matrix overriding the defaults
	Recorder Recorder   // receives the report
}

// NewtonCall holds the outcome of one Newton solve
type NewtonCall struct {
	Name string // name of the record
	slv.Result
}

// Report holds diagnostics of one simulation call
type Report struct {
	Iterations int          // iterations of the fixed point for the grain-boundary microstructure
	Converged  bool         // the fixed point reached the tolerance
	Residual   float64      // last relative change of the fixed point
	Newton     []NewtonCall // Newton solves performed
	Bubbles    int          // Newton iterations of the last microstructure solve
	Failed     bool         // a microstructure solve failed; the previous iterate was kept
}

// NonConverged tells whether any iterative solver stopped at the iteration cap
func (o *Report) NonConverged() bool {
	if !o.Converged || o.Failed {
		return true
	}
	for _, n := range o.Newton {
		if !n.Converged {
			return true
		}
	}
	return false
}

// Run advances one time step. The arrays follow the fixed layout of package state; vars and
// modes are overwritten only if no error occurs
//  Input:
//   opts  -- model selectors [state.NumOptions]
//   hist  -- history [state.NumHistory]
//   vars  -- state variables [state.NumVariables]
//   scale -- scaling factors [state.NumFactors]
//   modes -- diffusion modes [state.NumModeValues]
//   cfg   -- settings; may be nil
func Run(opts []int, hist, vars, scale, modes []float64, cfg *Config) (rep *Report, err error) {
	f, err := state.Decode(opts, hist, vars, scale, modes)
	if err != nil {
		return
	}
	rep, err = RunFrame(f, cfg)
	if err != nil {
		return nil, err
	}
	err = f.Encode(vars, modes)
	return
}

// RunFrame advances one time step with the containers in f, which are modified in place
func RunFrame(f *state.Frame, cfg *Config) (rep *Report, err error) {
	if cfg == nil {
		cfg = new(Config)
	}
	o, err := NewContext(f, cfg)
	if err != nil {
		return
	}
	for _, stg := range stages {
		if err = stg.run(o); err != nil {
			return nil, err
		}
	}
	if cfg.Recorder != nil {
		cfg.Recorder.Observe(o.Report)
	}
	return o.Report, nil
}

// Context holds the containers of one call; nothing is shared between calls
type Context struct {
	*mdl.Env
	Cfg    *Config
	Report *Report
	trace  Tracer
	tol    float64
	maxIt  int
}

// NewContext allocates the matrices and systems for the conditions in f
func NewContext(f *state.Frame, cfg *Config) (o *Context, err error) {
	o = &Context{Cfg: cfg, Report: new(Report), trace: cfg.Trace, tol: cfg.Tol, maxIt: cfg.MaxIt}
	if o.Env, err = mdl.NewEnv(f, cfg.Matrix); err != nil {
		return nil, err
	}
	if o.trace == nil && cfg.Verbose {
		o.trace = io.Pforan
	}
	if o.tol <= 0 {
		o.tol = DefaultTol
	}
	if o.maxIt <= 0 {
		o.maxIt = DefaultMaxIt
	}
	return
}

// tracef sends a message to the tracer, if any
func (o *Context) tracef(format string, args ...interface{}) {
	if o.trace != nil {
		o.trace(format, args...)
	}
}

// use traces a record and returns it
func (o *Context) use(rec *mdl.Record) *mdl.Record {
	if o.trace != nil && !rec.Empty() {
		o.trace("%v", rec)
	}
	return rec
}

// newton records the outcome of a Newton solve
func (o *Context) newton(name string, res slv.Result) float64 {
	o.Report.Newton = append(o.Report.Newton, NewtonCall{name, res})
	if !res.Converged {
		o.tracef("%s: no convergence after %d iterations (residual = %g)\n", name, res.It, res.Res)
	}
	return res.X
}

// stage holds one step of the sequence
type stage struct {
	name string
	run  func(o *Context) error
}

// stages in order of execution
var stages = []stage{
	{"burnup", burnup},
	{"environment", environment},
	{"thermochemistry", thermochemistry},
	{"high burnup structure", highBurnupStructure},
	{"grain growth", grainGrowth},
	{"grain-boundary sweeping", sweeping},
	{"gas production", production},
	{"gas decay", decay},
	{"intragranular bubbles", intraGranularBubbles},
	{"gas diffusion", diffusion},
	{"grain-boundary micro-cracking", microCracking},
	{"grain-boundary bubbles", interGranularBubbles},
	{"gas release", release},
	{"figures of merit", figuresOfMerit},
}
