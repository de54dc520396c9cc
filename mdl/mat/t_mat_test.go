// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func frame(T, Bu float64) *state.Frame {
	f := state.NewFrame()
	f.Hist.At(state.Temperature).Reset(T)
	f.Vars.At(state.GrainRadius).Reset(5e-6)
	f.Vars.At(state.Burnup).Reset(Bu)
	return f
}

func Test_uo2mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uo2mat01. defaults and parameters")

	f := frame(1500, 0)
	m, err := UO2(f)
	if err != nil {
		tst.Errorf("UO2 failed:\n%v", err)
		return
	}
	chk.Float64(tst, "grain radius", 1e-20, m.GrainRadius, 5e-6)
	chk.Float64(tst, "φ", 1e-6, m.ShapeFactor, 0.168610764)
	chk.Float64(tst, "D_v", 1e-12, m.GBVacancyDiffusivity/(6.9e-4*math.Exp(-5.35e-19/(Boltzmann*1500))), 1)
	chk.Float64(tst, "E", 1e-10, m.ElasticModulus, 223700)

	hbs := m.Restructured()
	chk.String(tst, hbs.Name, "UO2HBS")
	chk.Float64(tst, "HBS grain radius", 1e-20, hbs.GrainRadius, 150e-9)
	chk.Float64(tst, "UO2 grain radius unchanged", 1e-20, m.GrainRadius, 5e-6)

	// parameters
	err = m.Init(dbf.Params{
		&dbf.P{N: "surface_tension", V: 0.5},
		&dbf.P{N: "semidihedral_angle", V: math.Pi / 2},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "γ", 1e-15, m.SurfaceTension, 0.5)
	chk.Float64(tst, "φ(π/2)", 1e-15, m.ShapeFactor, 1)
	prms := m.GetPrms()
	chk.Float64(tst, "γ from GetPrms", 1e-15, prms.Find("surface_tension").V, 0.5)

	// errors
	if err = m.Init(dbf.Params{&dbf.P{N: "colour", V: 1}}); err == nil {
		tst.Errorf("unknown parameter must return an error\n")
		return
	}
	if err = m.Init(dbf.Params{&dbf.P{N: "gb_thickness", V: 0}}); err == nil {
		tst.Errorf("zero grain-boundary thickness must return an error\n")
	}
}

func Test_uo2mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uo2mat02. correlations")

	opts := state.DefaultOptions()

	// elastic modulus decreases with porosity, temperature and burnup
	opts[state.ElasticModulus] = 1
	E0, _ := ElasticModulus(&opts, 0, 293.15, 0)
	chk.Float64(tst, "E(reference)", 1e-9, E0, 223700)
	prev := E0
	for _, Bu := range utl.LinSpace(0, 100, 6) {
		E, _ := ElasticModulus(&opts, 0.05, 1200, Bu)
		io.Pforan("Bu = %5.1f  E = %.2f MPa\n", Bu, E)
		if E >= prev {
			tst.Errorf("elastic modulus must decrease\n")
			return
		}
		prev = E
	}
	opts[state.ElasticModulus] = 7
	_, err := ElasticModulus(&opts, 0, 300, 0)
	if _, ok := err.(*state.SwitchError); !ok {
		tst.Errorf("invalid option must return a SwitchError; got %v\n", err)
		return
	}

	// GB vacancy diffusivity
	opts[state.GrainBoundaryVacancyDiffusivity] = 0
	Dv, _ := GBVacancyDiffusivity(&opts, 1500)
	chk.Float64(tst, "D_v constant", 1e-40, Dv, 1e-30)

	// Blackburn's relation
	chk.Float64(tst, "pO2(x=0)", 1e-15, BlackburnOxygenPressure(0, 1500), 0)
	x, T := 0.01, 1500.0
	lnp := 2.0*math.Log(x*(x+2.0)/(1.0-x)) + 108.0*x*x - 32700.0/T + 9.92
	chk.Float64(tst, "ln pO2", 1e-12, math.Log(BlackburnOxygenPressure(x, T)), lnp)

	// steam dissociation increases with temperature and pressure
	p1, p2, p3 := SteamDissociation(1000, 1), SteamDissociation(1500, 1), SteamDissociation(1500, 10)
	io.Pforan("pO2 = %v %v %v\n", p1, p2, p3)
	if !(p1 < p2 && p2 < p3) {
		tst.Errorf("pO2 from steam must increase with temperature and pressure\n")
	}
	chk.Float64(tst, "no steam", 1e-15, SteamDissociation(1500, 0), 0)
}
