// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/baseline.sim", "", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	var b bytes.Buffer
	sim.GetInfo(&b)
	io.Pforan("%v", b.String())

	chk.String(tst, sim.Key, "baseline")
	chk.String(tst, sim.DirOut, "/tmp/gofgr/baseline")
	chk.Int(tst, "number of points", len(sim.History), 4)
	chk.Int(tst, "nsub", sim.Solver.NumSub, 20)
	chk.Int(tst, "grain growth", sim.Opts[state.GrainGrowth], 1)
	chk.Int(tst, "radioactive", sim.Opts[state.RadioactiveFissionGas], 1)
	chk.Int(tst, "gb behaviour (default)", sim.Opts[state.GrainBoundaryBehaviour], 1)
	chk.Float64(tst, "tol (default)", 1e-15, sim.Solver.Tol, 1e-2)
	chk.Float64(tst, "bubbles (default)", 1e-15, sim.Initial.InterBubbles/4e13, 1)
	chk.Float64(tst, "T @ 2", 1e-15, sim.History[2].T, 1500)
	chk.Float64(tst, "F @ 3", 1e-15, sim.History[3].F/2e19, 1)
	if !sim.Output.Table || !sim.Output.Database || sim.Output.Plot {
		tst.Errorf("output flags are incorrect: %+v\n", sim.Output)
	}
	chk.Int(tst, "matrix prms", len(sim.Matrix), 1)
	chk.String(tst, sim.Matrix[0].N, "surface_tension")

	// frame
	f := sim.Frame()
	chk.Float64(tst, "grain radius", 1e-20, f.Vars.Final(state.GrainRadius), 5e-6)
	chk.Float64(tst, "intactness", 1e-15, f.Vars.Initial(state.InterIntactness), 1)
	chk.Float64(tst, "T0", 1e-15, f.Hist.T(), 600)
	chk.Float64(tst, "scaling", 1e-15, f.Scale[state.SfDiffusivity], 1)

	// config
	cfg := sim.Config()
	chk.Int(tst, "maxit", cfg.MaxIt, 500)
	if cfg.Matrix.Find("surface_tension") == nil {
		tst.Errorf("matrix parameters must be passed to the simulation\n")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. errors")

	for _, str := range []string{
		`{"options":{"grain_growht":1}, "history":[{"time":0},{"time":1}]}`,
		`{"scaling":{"temp":1}, "history":[{"time":0},{"time":1}]}`,
		`{"history":[{"time":0}]}`,
		`{"history":`,
	} {
		_, err := DecodeSim([]byte(str))
		if err == nil {
			tst.Errorf("decoding %s must fail\n", str)
			return
		}
		io.Pforan("%v\n", err)
	}

	// defaults
	sim, err := DecodeSim([]byte(`{"history":[{"time":0,"T":1000},{"time":10,"T":1000}], "solver":{"nsub":0}}`))
	if err != nil {
		tst.Errorf("DecodeSim failed:\n%v", err)
		return
	}
	chk.Int(tst, "nsub", sim.Solver.NumSub, 1)
	chk.Int(tst, "options", sim.Opts[state.IntraGranularBubbles], state.DefaultOptions()[state.IntraGranularBubbles])
	chk.Float64(tst, "density", 1e-12, sim.Initial.Density, 10641)
	if _, err = ReadSim("data/nonexistent.sim", "", false); err == nil {
		tst.Errorf("reading nonexistent file must fail\n")
	}
}
