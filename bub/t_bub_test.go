// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bub

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

const (
	θ = 0.872664626 // 50°
	φ = 0.168610764
)

func Test_solve4a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve4a. known solution")

	// linearised coalescence system in scaled variables
	J := [4][4]float64{
		{0.875, 0, 1.4, 0},
		{-0.6, 1, 0, 0},
		{0, 0.3, 1.2, 0},
		{0, -0.5, -0.7, 1},
	}
	xcor := [4]float64{1.4, 1.25, 0.875, 0.2}
	var b [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b[i] += J[i][j] * xcor[j]
		}
	}
	x, err := Solve4(J, b)
	if err != nil {
		tst.Errorf("Solve4 failed:\n%v", err)
		return
	}
	for i := 0; i < 4; i++ {
		chk.Float64(tst, io.Sf("x%d/xcor%d", i, i), 1e-14, x[i]/xcor[i], 1)
	}

	// permutation (requires pivoting)
	P := [4][4]float64{
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 3, 0, 0},
	}
	x, err = Solve4(P, [4]float64{3, 1, 8, 6})
	if err != nil {
		tst.Errorf("Solve4 failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-15, x[:], []float64{1, 2, 3, 4})
}

func Test_solve4b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve4b. non-finite entries and singular systems")

	nan, inf := math.NaN(), math.Inf(1)
	J := [4][4]float64{
		{2, nan, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 4, -inf},
		{0, 0, 0, 1},
	}
	x, err := Solve4(J, [4]float64{2, 1, 8, nan})
	if err != nil {
		tst.Errorf("Solve4 failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-15, x[:], []float64{1, 1, 2, 0})

	var Z [4][4]float64
	Z[0][0], Z[1][1], Z[2][2] = 1, 1, 1
	_, err = Solve4(Z, [4]float64{1, 1, 1, 1})
	if err == nil {
		tst.Errorf("singular system must return an error\n")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_bub01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bub01. coalescence")

	// constructed solution
	N0, A0 := 1e12, 1e-13
	for _, V := range []float64{1.5e-20, 2e-20, 5e-20, 1e-19} {
		A := ProjectedArea(V, θ, φ)
		N := N0 / (1.0 + 2.0*N0*(A-A0))
		Vt := N * V
		out, err := Solve(Input{GasVolume: 0.4 * Vt, VacancyVolume: 0.6 * Vt, Area0: A0, Density0: N0, Theta: θ, Phi: φ})
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		io.Pforan("V = %g  A = %g  N = %g  F = %g  it = %d  res = %g\n", out.Volume, out.Area, out.Density, out.Coverage, out.Iterations, out.Residual)
		chk.Float64(tst, "V", 1e-9, out.Volume/V, 1)
		chk.Float64(tst, "A", 1e-9, out.Area/A, 1)
		chk.Float64(tst, "N", 1e-9, out.Density/N, 1)
		chk.Float64(tst, "F", 1e-9, out.Coverage/(N*A), 1)
		if out.Iterations >= Default.MaxIt {
			tst.Errorf("Newton iterations did not converge\n")
			return
		}
	}
}

func Test_bub02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bub02. degenerate inputs")

	// no gas
	out, err := Solve(Input{Area0: 1e-13, Density0: 4e13, Theta: θ, Phi: φ})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Float64(tst, "V", 1e-15, out.Volume, 0)
	chk.Float64(tst, "A", 1e-15, out.Area, 0)
	chk.Float64(tst, "N", 1e-15, out.Density/4e13, 1)
	chk.Float64(tst, "F", 1e-15, out.Coverage, 0)

	// no bubbles
	out, err = Solve(Input{GasVolume: 1e-8, Density0: 0, Theta: θ, Phi: φ})
	if err != nil {
		tst.Errorf("zero density must give an empty microstructure:\n%v", err)
		return
	}
	chk.Array(tst, "V,A,N,F", 1e-15, []float64{out.Volume, out.Area, out.Density, out.Coverage}, []float64{0, 0, 0, 0})

	// shrinking bubbles: density held
	N0, A0 := 4e13, 1e-12
	V := 1e-20
	out, err = Solve(Input{GasVolume: N0 * V, Area0: A0, Density0: N0, Theta: θ, Phi: φ})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	A := ProjectedArea(V, θ, φ)
	chk.Float64(tst, "N", 1e-15, out.Density/N0, 1)
	chk.Float64(tst, "V", 1e-14, out.Volume/V, 1)
	chk.Float64(tst, "A", 1e-14, out.Area/A, 1)
	chk.Float64(tst, "F", 1e-14, out.Coverage/(N0*A), 1)
}

func Test_bub03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bub03. growth")

	// coverage increases and density decreases with the volume of gas
	N0, A0 := 4e13, 0.0
	Fprev, Nprev := 0.0, N0
	for _, Vt := range utl.LinSpace(1e-8, 1e-6, 11) {
		out, err := Solve(Input{GasVolume: Vt, Area0: A0, Density0: N0, Theta: θ, Phi: φ})
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		if out.Coverage < Fprev || out.Density > Nprev {
			tst.Errorf("coverage must increase and density must decrease: F = %g, N = %g\n", out.Coverage, out.Density)
			return
		}
		chk.Float64(tst, "mass balance", 1e-10, out.Density*out.Volume/Vt, 1)
		chk.Float64(tst, "coverage", 1e-10, out.Coverage/(out.Density*out.Area), 1)
		Fprev, Nprev = out.Coverage, out.Density
	}
}

func Test_bub04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bub04. strong coalescence")

	// N0·A >> 1: coverage of bubbles without coalescence larger than one
	N0 := 4e13
	for _, Vt := range []float64{1e-7, 1e-6, 1e-5} {
		As := ProjectedArea(Vt/N0, θ, φ)
		out, err := Solve(Input{GasVolume: Vt, Density0: N0, Theta: θ, Phi: φ})
		io.Pforan("c = %6.2f  V = %g  A = %g  N = %g  F = %g  it = %d  res = %g\n", N0*As, out.Volume, out.Area, out.Density, out.Coverage, out.Iterations, out.Residual)
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		if out.Volume <= 0 || out.Area <= 0 || out.Density <= 0 || out.Density > N0 || out.Coverage <= 0 {
			tst.Errorf("invalid microstructure: V = %g, A = %g, N = %g, F = %g\n", out.Volume, out.Area, out.Density, out.Coverage)
			return
		}
		chk.Float64(tst, "mass balance", 1e-10, out.Density*out.Volume/Vt, 1)
		chk.Float64(tst, "geometry", 1e-10, out.Area/ProjectedArea(out.Volume, θ, φ), 1)
		chk.Float64(tst, "coalescence", 1e-10, out.Density*(1.0+2.0*N0*out.Area)/N0, 1)
		chk.Float64(tst, "coverage", 1e-10, out.Coverage/(out.Density*out.Area), 1)
	}

	// iterations exhausted
	slow := Solver{Tol: 1e-12, MaxIt: 1}
	_, err := slow.Solve(Input{GasVolume: 1e-5, Density0: N0, Theta: θ, Phi: φ})
	if err == nil {
		tst.Errorf("solver stopped at the iteration cap must return an error\n")
		return
	}
	io.Pforan("%v\n", err)
}
