// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gofgr/state"
)

// constants of the formation of the high burnup structure
const (
	hbsAvrami = 3.54    // Avrami exponent
	hbsRate   = 2.77e-7 // (MWd/kgUO2)^-A

	// above this temperature the burnup does not contribute to restructuring (K)
	hbsTemperature = 1273.15
)

// constants of the porosity of the high burnup structure
const (
	hbsPorosityThreshold = 50.0   // (MWd/kgUO2)
	hbsPorosityRate      = 1.3e-3 // (1/(MWd/kgUO2))
	hbsPorosityMax       = 0.15
)

// HighBurnupStructureFormation returns the record of the restructured volume fraction. The
// fraction α follows the derivative of the Avrami law with respect to the effective burnup
//
//   dα/dBu = c·(1 - α)    c = A·k·Bu^(A-1)
//
//  Prms: rate
func HighBurnupStructureFormation(e *Env) (o *Record, err error) {
	o = NewRecord("High burnup structure formation", "Barani et al., JNM 539 (2020) 152296")
	switch e.Opts[state.HighBurnupStructureFormation] {
	case 0:
		return
	case 1:
		Bu := e.Vars.Final(state.EffectiveBurnup)
		o.Add("rate", hbsAvrami*hbsRate*math.Pow(Bu, hbsAvrami-1.0))
		return
	}
	return nil, e.Opts.InvalidSwitch(state.HighBurnupStructureFormation)
}

// HighBurnupStructurePorosity returns the record of the porosity of the high burnup structure
//
//  Prms: rate, max
func HighBurnupStructurePorosity(e *Env) (o *Record, err error) {
	o = NewRecord("High burnup structure porosity", "Spino et al., JNM 354 (2006) 66-84")
	switch e.Opts[state.HighBurnupStructurePorosity] {
	case 0:
		return
	case 1:
		rate := 0.0
		if e.Vars.Final(state.Burnup) >= hbsPorosityThreshold {
			rate = hbsPorosityRate
		}
		o.Add("rate", rate).Add("max", hbsPorosityMax)
		return
	}
	return nil, e.Opts.InvalidSwitch(state.HighBurnupStructurePorosity)
}
