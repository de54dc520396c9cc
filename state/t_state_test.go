// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_variable01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("variable01")

	v := Variable{Name: "Burnup", Unit: "(MWd/kgUO2)"}
	v.Reset(10)
	chk.Float64(tst, "increment after reset", 1e-15, v.Increment(), 0)
	v.Final = 12.5
	chk.Float64(tst, "increment", 1e-15, v.Increment(), 2.5)
	v.SetConstant()
	chk.Float64(tst, "final after SetConstant", 1e-15, v.Final, 10)
	io.Pforan("%v\n", v)
}

func Test_keys01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("keys01")

	// flat indices must be unique and inside the array
	used := make(map[int]Key)
	for k := Key(0); k < NumKeys; k++ {
		idx := k.Index()
		if idx < 0 {
			continue
		}
		if idx >= NumVariables {
			tst.Errorf("index of %q is out of range: %d\n", k.Name(), idx)
			return
		}
		if other, ok := used[idx]; ok {
			tst.Errorf("index %d is used by %q and %q\n", idx, other.Name(), k.Name())
			return
		}
		used[idx] = k
	}

	chk.String(tst, GasKey(Xe133, Decayed).Name(), "Xe133 decayed")
	chk.Int(tst, "index of Kr released", GasKey(Kr, Released).Index(), 12)
	chk.Int(tst, "index of Xe decayed", GasKey(Xe, Decayed).Index(), -1)

	k, ok := KeyByName("Intergranular fractional coverage")
	if !ok || k != InterCoverage {
		tst.Errorf("KeyByName failed\n")
	}
}

func Test_modes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes01")

	var m Modes
	blk := m.Block(KrUO2, Solution)
	for i := range blk {
		blk[i] = float64(i + 1)
	}

	// lookup by name returns the same block
	res, err := m.Lookup("Kr", Solution)
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	chk.Int(tst, "len", len(res), NumModes)
	chk.Float64(tst, "first", 1e-15, res[0], 1)
	chk.Float64(tst, "last", 1e-15, res[NumModes-1], NumModes)

	// neighbour blocks are untouched
	chk.Float64(tst, "Kr total", 1e-15, m.Block(KrUO2, Total)[NumModes-1], 0)
	chk.Float64(tst, "Kr bubbles", 1e-15, m.Block(KrUO2, Bubbles)[0], 0)

	// unknown species
	res, err = m.Lookup("Ar", Total)
	if err == nil {
		tst.Errorf("lookup of unknown species should have failed\n")
		return
	}
	if res != nil {
		tst.Errorf("lookup of unknown species must not return a block\n")
		return
	}
	io.Pforan("%v\n", err)

	// slices cannot grow into the next block
	xe := m.Block(XeUO2HBS, Bubbles)
	chk.Int(tst, "cap", cap(xe), NumModes)
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01")

	opts := make([]int, NumOptions)
	hist := make([]float64, NumHistory)
	vars := make([]float64, NumVariables)
	scale := make([]float64, NumFactors)
	modes := make([]float64, NumModeValues)
	hist[0], hist[1] = 1000, 1200
	hist[2], hist[3] = 1e19, 2e19
	hist[8], hist[9], hist[10] = 5, 3, 3600
	vars[0] = 5e-6
	vars[34] = 0.2
	modes[NumModes*3+7] = 1.5

	f, err := Decode(opts, hist, vars, scale, modes)
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T0", 1e-15, f.Hist.At(Temperature).Initial, 1000)
	chk.Float64(tst, "T1", 1e-15, f.Hist.T(), 1200)
	chk.Float64(tst, "F1", 1e-15, f.Hist.F(), 2e19)
	chk.Float64(tst, "dt", 1e-15, f.Hist.TimeStep, 3600)
	chk.Int(tst, "step", f.Hist.Step, 3)
	chk.Float64(tst, "grain radius", 1e-15, f.Vars.Initial(GrainRadius), 5e-6)
	chk.Float64(tst, "coverage", 1e-15, f.Vars.Final(InterCoverage), 0.2)
	chk.Float64(tst, "mode", 1e-15, f.Modes.Block(KrUO2, Total)[7], 1.5)

	f.Vars.Set(InterCoverage, 0.3)
	f.Modes.Block(XeUO2, Bubbles)[0] = 2
	if err = f.Encode(vars, modes); err != nil {
		tst.Errorf("encode failed: %v\n", err)
		return
	}
	chk.Float64(tst, "coverage (flat)", 1e-15, vars[34], 0.3)
	chk.Float64(tst, "mode (flat)", 1e-15, modes[2*NumModes], 2)

	_, err = Decode(opts[:3], hist, vars, scale, modes)
	if err == nil {
		tst.Errorf("short options array should have been rejected\n")
	}
}

func Test_snapshot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot01")

	f := NewFrame()
	f.Vars.Set(Burnup, 12.0)
	f.Vars.Gas(Xe, Released).Final = 3e22
	f.Modes.Block(HeUO2, Total)[4] = 7
	f.Hist.Time, f.Hist.Step = 100, 10

	b, err := f.Snapshot(true).Encode()
	if err != nil {
		tst.Errorf("encode failed: %v\n", err)
		return
	}
	snap, err := DecodeSnapshot(b)
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	g := NewFrame()
	if err = snap.Restore(g); err != nil {
		tst.Errorf("restore failed: %v\n", err)
		return
	}
	chk.Float64(tst, "burnup", 1e-15, g.Vars.Initial(Burnup), 12)
	chk.Float64(tst, "Xe released", 1e-15, g.Vars.Gas(Xe, Released).Final, 3e22)
	chk.Float64(tst, "He mode", 1e-15, g.Modes.Block(HeUO2, Total)[4], 7)
	chk.Int(tst, "step", g.Hist.Step, 10)

	snap.Version = 99
	if err = snap.Restore(g); err == nil {
		tst.Errorf("restore must check the version\n")
	}
	_, err = DecodeSnapshot([]byte(`{"version":0,"vars":{}}`))
	if err == nil {
		tst.Errorf("decode must check the version\n")
	}
}

func Test_switch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("switch01")

	o := DefaultOptions()
	o[DiffusionSolver] = 7
	err := o.InvalidSwitch(DiffusionSolver)
	var serr *SwitchError
	if !errors.As(err, &serr) {
		tst.Errorf("SwitchError expected\n")
		return
	}
	chk.String(tst, serr.Option, "diffusion_solver")
	chk.Int(tst, "value", serr.Value, 7)
	chk.String(tst, serr.File, "t_state_test.go")
	io.Pforan("%v\n", err)
}
