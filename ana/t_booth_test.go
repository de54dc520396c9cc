// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_booth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("booth01")

	chk.Float64(tst, "f(0)", 1e-15, BoothRelease(0, 100), 0)

	// short times: f ≈ 4√(τ/π) - 3τ/2
	for _, τ := range []float64{1e-4, 1e-3} {
		short := 4.0*math.Sqrt(τ/math.Pi) - 1.5*τ
		f := BoothRelease(τ, 2000)
		io.Pforan("τ = %g  f = %g  short = %g\n", τ, f, short)
		chk.Float64(tst, io.Sf("f(%g)", τ), 1e-4*short, f, short)
	}

	// long times: f ≈ 1 - 1/(15τ)
	τ := 10.0
	chk.Float64(tst, "f(10)", 1e-8, BoothRelease(τ, 100), 1.0-1.0/(15.0*τ))

	// monotonic
	prev := 0.0
	for i := 1; i <= 50; i++ {
		f := BoothRelease(float64(i)*0.01, 200)
		if f <= prev || f > 1 {
			tst.Errorf("release fraction must increase and stay below 1: f = %g, prev = %g\n", f, prev)
			return
		}
		prev = f
	}
}

func Test_booth02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("booth02")

	// stable limit
	chk.Float64(tst, "R/B(0)", 1e-15, BoothRB(0), 1)
	chk.Float64(tst, "R/B(1e-5)", 1e-10, BoothRB(1e-5), 1)

	// continuity at the switch
	chk.Float64(tst, "R/B near switch", 1e-6, BoothRB(1.0001e-4), BoothRB(0.9999e-4))

	// large μ: R/B ≈ 3/μ
	μ := 1e3
	chk.Float64(tst, "R/B(1e3)", 1e-9, BoothRB(μ), 3.0/μ-3.0/(μ*μ))
}

func Test_decay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decay01")

	λ, S := 2.0, 6.0
	chk.Float64(tst, "y(0)", 1e-15, DecayClosedForm(5, λ, S, 0), 5)
	chk.Float64(tst, "y(∞)", 1e-12, DecayClosedForm(5, λ, S, 100), S/λ)
	chk.Float64(tst, "y(1)", 1e-14, DecayClosedForm(0, λ, S, 1), 3.0*(1.0-math.Exp(-2)))

	// steady concentration in a sphere
	chk.Float64(tst, "steady", 1e-15, SphereSteadyConcentration(15, 2, 4), 1)
}
