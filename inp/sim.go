// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"bytes"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gofgr/sim"
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gofgr
}

// SolverData holds the settings of the simulation calls
type SolverData struct {
	Tol     float64 `json:"tol"`     // tolerance of the fixed point for grain-boundary bubbles
	MaxIt   int     `json:"maxit"`   // max number of iterations of the fixed point
	NumSub  int     `json:"nsub"`    // number of time steps per interval of the history
	Verbose bool    `json:"verbose"` // trace records and iterations
}

// IniData holds the initial conditions
type IniData struct {
	GrainRadius   float64 `json:"grainradius"`   // grain radius (m)
	Density       float64 `json:"density"`       // fuel density (kg/m3)
	InterBubbles  float64 `json:"interbubbles"`  // density of grain-boundary bubbles (bub/m2)
	Intactness    float64 `json:"intactness"`    // fractional intactness of grain boundaries
	Stoichiometry float64 `json:"stoichiometry"` // stoichiometry deviation
	Burnup        float64 `json:"burnup"`        // burnup (MWd/kgUO2)
}

// OutputData holds the settings of the outputs
type OutputData struct {
	Table    bool   `json:"table"`    // write tab-separated table of output variables
	Database bool   `json:"database"` // store snapshots of each step in a SQLite database
	Modes    bool   `json:"modes"`    // include diffusion modes in the stored snapshots
	Plot     bool   `json:"plot"`     // plot histories of figures of merit
	Metrics  string `json:"metrics"`  // file with metrics of the solvers; empty means none
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data               `json:"data"`    // global data
	Options map[string]int     `json:"options"` // model selectors by name; e.g. "grain_growth": 1
	Scaling map[string]float64 `json:"scaling"` // scaling factors by name; e.g. "diffusivity": 2
	Initial IniData            `json:"initial"` // initial conditions
	History []sim.Point        `json:"history"` // piecewise-linear history
	Matrix  dbf.Params         `json:"matrix"`  // properties of the fuel matrix overriding defaults
	Solver  SolverData         `json:"solver"`  // solver settings
	Output  OutputData         `json:"output"`  // output settings

	// derived
	Key    string        // simulation key; e.g. baseline.sim => baseline
	DirOut string        // directory to save results
	Opts   state.Options // model selectors
	Scale  state.Scaling // scaling factors
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Tol = sim.DefaultTol
	o.MaxIt = sim.DefaultMaxIt
	o.NumSub = 10
}

// SetDefault sets default values
func (o *IniData) SetDefault() {
	o.GrainRadius = 5e-6
	o.Density = 10641
	o.InterBubbles = 4e13
	o.Intactness = 1
}

// SetDefault sets default values
func (o *OutputData) SetDefault() {
	o.Table = true
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, createDirOut bool) (o *Simulation, err error) {
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}
	o, err = DecodeSim(b)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot decode simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofgr/" + fnkey
	}
	if createDirOut {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	return
}

// DecodeSim decodes simulation data in JSON format and checks it
func DecodeSim(b []byte) (o *Simulation, err error) {

	// set default values
	o = new(Simulation)
	o.Solver.SetDefault()
	o.Initial.SetDefault()
	o.Output.SetDefault()

	// decode
	if err = json.Unmarshal(b, o); err != nil {
		return nil, err
	}

	// options
	o.Opts = state.DefaultOptions()
	for name, val := range o.Options {
		opt, ok := optionByName(name)
		if !ok {
			return nil, chk.Err("option %q is not available", name)
		}
		o.Opts[opt] = val
	}

	// scaling factors
	o.Scale = state.DefaultScaling()
	for name, val := range o.Scaling {
		k, ok := factorByName(name)
		if !ok {
			return nil, chk.Err("scaling factor %q is not available", name)
		}
		o.Scale[k] = val
	}

	// history
	if len(o.History) < 2 {
		return nil, chk.Err("history must have at least two points; %d given", len(o.History))
	}
	if o.Solver.NumSub < 1 {
		o.Solver.NumSub = 1
	}
	return
}

// Frame returns the frame with initial conditions and selectors
func (o *Simulation) Frame() *state.Frame {
	f := state.NewFrame()
	f.Opts = o.Opts
	f.Scale = o.Scale
	v := f.Vars
	v.At(state.GrainRadius).Reset(o.Initial.GrainRadius)
	v.At(state.FuelDensity).Reset(o.Initial.Density)
	v.At(state.InterBubbleConcentration).Reset(o.Initial.InterBubbles)
	v.At(state.InterIntactness).Reset(o.Initial.Intactness)
	v.At(state.StoichiometryDeviation).Reset(o.Initial.Stoichiometry)
	v.At(state.Burnup).Reset(o.Initial.Burnup)
	p := o.History[0]
	f.Hist.At(state.Temperature).Reset(p.T)
	f.Hist.At(state.FissionRate).Reset(p.F)
	f.Hist.At(state.HydrostaticStress).Reset(p.Stress)
	f.Hist.At(state.SteamPressure).Reset(p.Steam)
	f.Hist.Time = p.Time
	return f
}

// Config returns the settings of the simulation calls
func (o *Simulation) Config() *sim.Config {
	return &sim.Config{
		Tol:     o.Solver.Tol,
		MaxIt:   o.Solver.MaxIt,
		Verbose: o.Solver.Verbose,
		Matrix:  o.Matrix,
	}
}

// GetInfo writes a summary of the simulation data
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	var b bytes.Buffer
	io.Ff(&b, "%s\n", o.Data.Desc)
	io.Ff(&b, "  history points = %d   steps per interval = %d   final time = %g h\n", len(o.History), o.Solver.NumSub, o.History[len(o.History)-1].Time)
	for opt := state.Option(0); opt < state.NumOptions; opt++ {
		io.Ff(&b, "  %-36s = %d\n", opt, o.Opts[opt])
	}
	for _, p := range o.Matrix {
		io.Ff(&b, "  %-36s = %g\n", p.N, p.V)
	}
	_, err = w.Write(b.Bytes())
	return
}

// optionByName returns the selector with the given name
func optionByName(name string) (state.Option, bool) {
	for i, n := range state.OptionNames {
		if n == name {
			return state.Option(i), true
		}
	}
	return 0, false
}

// factorByName returns the scaling factor with the given name
func factorByName(name string) (state.Factor, bool) {
	for i, n := range state.FactorNames {
		if n == name {
			return state.Factor(i), true
		}
	}
	return 0, false
}
