// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements the properties of fission gases and of gas-in-matrix systems
package gas

import "github.com/cpmech/gofgr/state"

// Gas holds the properties of a gas species
type Gas struct {
	Name              string    // e.g. "Xe133"
	Species           state.Gas // key in state
	AtomicNumber      int       // Z
	MassNumber        int       // A; 0 for the stable mixture of isotopes
	VanDerWaalsVolume float64   // (m3)
	DecayRate         float64   // (1/s)
	Yield             float64   // cumulative fission yield (at/fiss)
	PrecursorFactor   float64   // enhancement of diffusivity due to precursors (-)
}

// Stable tells whether the gas does not decay
func (o *Gas) Stable() bool { return o.DecayRate == 0 }

// database of gases
var database = [state.NumGases]Gas{
	state.Xe:    {"Xe", state.Xe, 54, 0, 8.5e-29, 0, 0.24, 1},
	state.Kr:    {"Kr", state.Kr, 36, 0, 8.5e-29, 0, 0.03, 1},
	state.He:    {"He", state.He, 2, 4, 1.78e-29, 0, 0.0022, 1},
	state.Xe133: {"Xe133", state.Xe133, 54, 133, 8.5e-29, 1.5301e-6, 0.0669, 1.25},
	state.Kr85m: {"Kr85m", state.Kr85m, 36, 85, 8.5e-29, 4.3e-5, 0.013, 1.31},
}

// Get returns a copy of the properties of gas g
func Get(g state.Gas) *Gas {
	o := database[g]
	return &o
}
