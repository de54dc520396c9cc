// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"sync"
	"testing"

	"github.com/cpmech/gofgr/ana"
	mdlgas "github.com/cpmech/gofgr/mdl/gas"
	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// frame returns a fresh frame with a 5 µm grain, theoretical density and the initial
// density of grain-boundary bubbles
func frame(opts map[state.Option]int) *state.Frame {
	f := state.NewFrame()
	for opt, v := range opts {
		f.Opts[opt] = v
	}
	f.Vars.At(state.GrainRadius).Reset(5e-6)
	f.Vars.At(state.FuelDensity).Reset(10640)
	f.Vars.At(state.InterBubbleConcentration).Reset(4e13)
	f.Vars.At(state.InterIntactness).Reset(1)
	return f
}

// history returns a constant history at temperature T and fission rate F up to time tf (h)
func history(T, F, tf float64) []Point {
	return []Point{{Time: 0, T: T, F: F}, {Time: tf, T: T, F: F}}
}

// conserved checks that produced = in grain + at grain boundary + released + decayed
func conserved(tst *testing.T, f *state.Frame) {
	v := f.Vars
	for g := state.Gas(0); g < state.NumGases; g++ {
		prod := v.Gas(g, state.Produced).Final
		if prod <= 0 {
			continue
		}
		sum := v.Gas(g, state.InGrain).Final + v.Gas(g, state.AtGrainBoundary).Final +
			v.Gas(g, state.Released).Final + v.Gas(g, state.Decayed).Final
		if g == state.Xe {
			sum += v.Final(state.XeProducedHBS)
		}
		if math.Abs(sum-prod) > 1e-9*prod {
			tst.Errorf("step %d: %v is not conserved: produced = %g, sum = %g\n", f.Hist.Step, g, prod, sum)
		}
	}
}

// physical checks that the inventories are not negative and that the coverage is within
// saturation
func physical(tst *testing.T, f *state.Frame) {
	v := f.Vars
	for g := state.Gas(0); g < state.NumGases; g++ {
		prod := v.Gas(g, state.Produced).Final
		if prod <= 0 {
			continue
		}
		for _, gv := range []state.GasVar{state.InGrain, state.AtGrainBoundary, state.Released, state.Decayed} {
			if x := v.Gas(g, gv).Final; x < -1e-9*prod {
				tst.Errorf("step %d: %s = %g is negative\n", f.Hist.Step, state.GasKey(g, gv).Name(), x)
			}
		}
	}
	F := v.Final(state.InterCoverage)
	if F < 0 {
		tst.Errorf("step %d: coverage %g is negative\n", f.Hist.Step, F)
	}
	if f.Opts[state.GrainBoundaryVenting] == 0 {
		if Fsat := v.Final(state.InterSaturationCoverage); F > Fsat*(1+1e-9) {
			tst.Errorf("step %d: coverage %g is above saturation %g\n", f.Hist.Step, F, Fsat)
		}
	}
	for _, k := range []state.Key{state.InterBubbleConcentration, state.InterBubbleArea, state.InterBubbleVolume} {
		if x := v.Final(k); x < 0 {
			tst.Errorf("step %d: %s = %g is negative\n", f.Hist.Step, k.Name(), x)
		}
	}
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. mass conservation over a history")

	for _, opts := range []map[state.Option]int{
		nil,
		{state.RadioactiveFissionGas: 1},
		{state.GrainBoundaryVenting: 1},
		{state.DiffusionSolver: 2, state.GrainGrowth: 1},
		{state.FuelMatrix: 1, state.HighBurnupStructureFormation: 1, state.HighBurnupStructurePorosity: 1},
	} {
		f := frame(opts)
		drv, err := NewDriver(f, history(1600, 1e19, 2000), 20, nil)
		if err != nil {
			tst.Errorf("NewDriver failed:\n%v", err)
			return
		}
		drv.OnStep = func(f *state.Frame, rep *Report) error {
			conserved(tst, f)
			v := f.Vars
			fgr := v.Final(state.FissionGasRelease)
			if fgr < 0 || fgr > 1 {
				tst.Errorf("step %d: fission gas release %g is out of range\n", f.Hist.Step, fgr)
			}
			physical(tst, f)
			for _, k := range []state.Key{state.Xe133RB, state.Kr85mRB} {
				if rb := v.Final(k); rb < 0 || rb > 1 {
					tst.Errorf("step %d: %s = %g is out of range\n", f.Hist.Step, k.Name(), rb)
				}
			}
			chk.Float64(tst, "HBS pores", 1e-3, v.Final(state.XeInHBSPores), v.Final(state.XeProducedHBS)-v.Final(state.XeInGrainHBS))
			return nil
		}
		if err = drv.Run(); err != nil {
			tst.Errorf("Run failed:\n%v", err)
			return
		}
		chk.Int(tst, "steps", drv.Steps, 20)
		v := drv.Frame.Vars
		io.Pforan("opts = %v: FGR = %g  coverage = %g  non-converged = %d\n", opts, v.Final(state.FissionGasRelease), v.Final(state.InterCoverage), drv.NonConverged)
		if v.Final(state.Burnup) <= 0 || v.Gas(state.Xe, state.Produced).Final <= 0 {
			tst.Errorf("burnup and production must increase\n")
		}
		chk.Float64(tst, "time", 1e-12, drv.Frame.Hist.Time, 2000)
	}
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. stationary step")

	// constant conditions followed by steps with zero time increment
	f := frame(nil)
	pts := append(history(1500, 1e19, 500), Point{Time: 500, T: 1500, F: 1e19})
	drv, err := NewDriver(f, pts, 5, nil)
	if err != nil {
		tst.Errorf("NewDriver failed:\n%v", err)
		return
	}
	var prev *state.Set
	var reports []*Report
	drv.OnStep = func(f *state.Frame, rep *Report) error {
		if f.Hist.TimeStep == 0 {
			reports = append(reports, rep)
			for _, k := range []state.Key{state.InterCoverage, state.InterBubbleConcentration, state.InterAtomsPerBubble, state.Burnup} {
				chk.Float64(tst, k.Name(), 1e-9, f.Vars.Final(k)/math.Max(prev.Final(k), 1e-300), 1)
			}
			for _, gv := range []state.GasVar{state.InGrain, state.AtGrainBoundary, state.Released} {
				a, b := f.Vars.Gas(state.Xe, gv).Final, prev.Gas(state.Xe, gv).Final
				if math.Abs(a-b) > 1e-9*math.Max(math.Abs(b), 1) {
					tst.Errorf("Xe %d changed in stationary step: %g != %g\n", gv, a, b)
				}
			}
		}
		prev = f.Vars.Clone()
		return nil
	}
	if err = drv.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "stationary steps", len(reports), 5)
	for _, rep := range reports {
		chk.Int(tst, "iterations", rep.Iterations, 1)
		if !rep.Converged {
			tst.Errorf("stationary step must converge\n")
		}
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. invalid selector and flat arrays")

	f := frame(map[state.Option]int{state.GrainBoundaryVenting: 7})
	f.Hist.At(state.Temperature).Reset(1500)
	f.Hist.At(state.FissionRate).Reset(1e19)
	f.Hist.TimeStep = 3600
	opts, hist, vars, scale, modes := f.Arrays()
	vars0 := append([]float64{}, vars...)
	_, err := Run(opts, hist, vars, scale, modes, nil)
	if err == nil {
		tst.Errorf("invalid option must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	serr, ok := err.(*state.SwitchError)
	if !ok {
		tst.Errorf("error must be a *state.SwitchError\n")
		return
	}
	chk.String(tst, serr.Option, "gb_venting")
	chk.Int(tst, "value", serr.Value, 7)
	chk.Array(tst, "vars are not written", 1e-300, vars, vars0)

	// short arrays
	if _, err = Run(opts[:3], hist, vars, scale, modes, nil); err == nil {
		tst.Errorf("short options array must fail\n")
	}

	// valid step writes the arrays
	opts[state.GrainBoundaryVenting] = 0
	rep, err := Run(opts, hist, vars, scale, modes, &Config{Tol: 1e-3})
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	io.Pforan("iterations = %d  residual = %g\n", rep.Iterations, rep.Residual)
	g, err := state.Decode(opts, hist, vars, scale, modes)
	if err != nil {
		tst.Errorf("Decode failed:\n%v", err)
		return
	}
	if g.Vars.Final(state.Burnup) <= 0 {
		tst.Errorf("burnup must be written to the flat array\n")
	}
	conserved(tst, g)
}

func Test_run04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run04. concurrent runs")

	run := func() (vars []float64, err error) {
		drv, err := NewDriver(frame(map[state.Option]int{state.RadioactiveFissionGas: 1}), history(1700, 2e19, 1000), 10, nil)
		if err != nil {
			return
		}
		if err = drv.Run(); err != nil {
			return
		}
		_, _, vars, _, _ = drv.Frame.Arrays()
		return
	}
	ref, err := run()
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}

	const n = 8
	results := make([][]float64, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = run()
		}(i)
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			tst.Errorf("run %d failed:\n%v", i, errs[i])
			return
		}
		chk.Array(tst, io.Sf("vars of run %d", i), 1e-300, results[i], ref)
	}
}

func Test_run05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run05. tracer and recorder")

	var messages int
	rec := new(counter)
	cfg := &Config{Trace: func(format string, args ...interface{}) { messages++ }, Recorder: rec}
	drv, err := NewDriver(frame(nil), history(1500, 1e19, 100), 2, cfg)
	if err != nil {
		tst.Errorf("NewDriver failed:\n%v", err)
		return
	}
	if err = drv.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "observed", rec.n, 2)
	if messages == 0 {
		tst.Errorf("tracer must receive messages\n")
	}

	// invalid histories
	if _, err = NewDriver(frame(nil), history(1500, 1e19, 100)[:1], 1, nil); err == nil {
		tst.Errorf("history with one point must fail\n")
	}
	if _, err = NewDriver(frame(nil), []Point{{Time: 10}, {Time: 5}}, 1, nil); err == nil {
		tst.Errorf("decreasing times must fail\n")
	}
}

func Test_run06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run06. radioactive gases with long steps")

	f := frame(map[state.Option]int{state.RadioactiveFissionGas: 1})
	drv, err := NewDriver(f, history(1600, 1e19, 2000), 20, nil)
	if err != nil {
		tst.Errorf("NewDriver failed:\n%v", err)
		return
	}
	drv.OnStep = func(f *state.Frame, rep *Report) error {
		conserved(tst, f)
		physical(tst, f)
		v := f.Vars
		for _, g := range []state.Gas{state.Xe133, state.Kr85m} {
			prod, dec := v.Gas(g, state.Produced).Final, v.Gas(g, state.Decayed).Final
			if dec > prod || dec < 0 {
				tst.Errorf("step %d: decayed %v = %g is out of [0, %g]\n", f.Hist.Step, g, dec, prod)
			}
		}
		for _, k := range []state.Key{state.Xe133RB, state.Kr85mRB} {
			if rb := v.Final(k); rb < 0 || rb > 1 {
				tst.Errorf("step %d: %s = %g is out of range\n", f.Hist.Step, k.Name(), rb)
			}
		}
		return nil
	}
	if err = drv.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// existing Kr85m after many half-lives: production over decay rate
	v := drv.Frame.Vars
	g := mdlgas.Get(state.Kr85m)
	existing := v.Gas(state.Kr85m, state.Produced).Final - v.Gas(state.Kr85m, state.Decayed).Final
	chk.Float64(tst, "existing Kr85m", 1e-9, existing/(g.Yield*1e19/g.DecayRate), 1)
}

func Test_run07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run07. release without decay and trapping")

	// constant diffusivity, no intragranular bubbles and all gas at the boundaries released
	f := frame(map[state.Option]int{
		state.FissionGasDiffusivity:      0,
		state.IntraGranularBubbles:       0,
		state.GrainBoundaryBehaviour:     0,
		state.GrainBoundaryMicroCracking: 0,
	})
	D, a, F := 7e-19, 5e-6, 1e19
	drv, err := NewDriver(f, history(1600, F, 2000), 20, nil)
	if err != nil {
		tst.Errorf("NewDriver failed:\n%v", err)
		return
	}
	drv.OnStep = func(f *state.Frame, rep *Report) error {
		conserved(tst, f)
		physical(tst, f)
		v := f.Vars
		t := f.Hist.Time * 3600.0
		prod := v.Gas(state.Xe, state.Produced).Final
		chk.Float64(tst, "produced", 1e-12, prod/(0.24*F*t), 1)
		fana := ana.BoothRelease(D*t/(a*a), 2000)
		frel := v.Gas(state.Xe, state.Released).Final / prod
		io.Pforan("t = %6.0f h  f = %12.6e  fana = %12.6e\n", f.Hist.Time, frel, fana)
		chk.Float64(tst, "release fraction", 1e-4, frel, fana)
		chk.Float64(tst, "grain boundary", 1e-15, v.Gas(state.Xe, state.AtGrainBoundary).Final, 0)
		return nil
	}
	if err = drv.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
	}
}

// counter counts the observed reports
type counter struct{ n int }

func (o *counter) Observe(r *Report) { o.n++ }
