// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/gofgr/inp"
	"github.com/cpmech/gofgr/out"
	"github.com/cpmech/gofgr/sim"
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doprof := io.ArgToInt(2, 0)

	// message
	if verbose {
		io.PfWhite("\nGofgr -- grain-scale fission gas behaviour\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, false)()
	}

	// simulation data
	data, err := inp.ReadSim(fnamepath, "", true)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	if verbose {
		var b bytes.Buffer
		data.GetInfo(&b)
		io.Pf("%v\n", b.String())
	}

	// outputs
	outs := &out.Outputs{Results: out.NewResults(nil), WithModes: data.Output.Modes}
	if data.Output.Table {
		outs.Table = out.NewTable(nil)
	}
	if data.Output.Database {
		outs.Store, err = out.OpenStore(filepath.Join(data.DirOut, data.Key+".db"))
		if err != nil {
			chk.Panic("%v", err)
		}
		defer outs.Store.Close()
		if outs.Run, err = outs.Store.NewRun(data.Key, data.Data.Desc); err != nil {
			chk.Panic("%v", err)
		}
	}
	cfg := data.Config()
	var metrics *out.Metrics
	if data.Output.Metrics != "" {
		metrics = out.NewMetrics()
		cfg.Recorder = metrics
	}

	// run simulation
	drv, err := sim.NewDriver(data.Frame(), data.History, data.Solver.NumSub, cfg)
	if err != nil {
		chk.Panic("%v", err)
	}
	drv.OnStep = outs.OnStep
	if err = drv.Run(); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save results
	if outs.Table != nil {
		outs.Table.Save(data.DirOut, data.Key+".txt")
	}
	if data.Output.Plot {
		if err = outs.Results.PlotDefault(data.DirOut, data.Key); err != nil {
			chk.Panic("%v", err)
		}
	}
	if metrics != nil {
		if err = metrics.Save(filepath.Join(data.DirOut, data.Output.Metrics)); err != nil {
			chk.Panic("%v", err)
		}
	}

	// summary
	if verbose {
		v := drv.Frame.Vars
		io.Pf("\nsteps = %d   non-converged = %d\n", drv.Steps, drv.NonConverged)
		if outs.Store != nil {
			io.Pf("run %v stored in %s\n", outs.Run, outs.Store.Path())
		}
		io.PfGreen("fission gas release = %g\n", v.Final(state.FissionGasRelease))
	}
}
