// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/cpmech/gosl/chk"

// NumModes is the number of terms of the spectral series for each transported population
const NumModes = 40

// System identifies a (gas, fuel matrix) pair
type System int

// systems; the order fixes the layout of the modes array
const (
	XeUO2 System = iota
	KrUO2
	HeUO2
	Xe133UO2
	Kr85mUO2
	XeUO2HBS
	NumSystems
)

var systemData = [NumSystems]struct {
	name string
	key  string
	gas  Gas
	hbs  bool
}{
	XeUO2:    {"Xe in UO2", "Xe", Xe, false},
	KrUO2:    {"Kr in UO2", "Kr", Kr, false},
	HeUO2:    {"He in UO2", "He", He, false},
	Xe133UO2: {"Xe133 in UO2", "Xe133", Xe133, false},
	Kr85mUO2: {"Kr85m in UO2", "Kr85m", Kr85m, false},
	XeUO2HBS: {"Xe in UO2HBS", "XeHBS", Xe, true},
}

// String returns the name of the system
func (s System) String() string { return systemData[s].name }

// Gas returns the gas of the system
func (s System) Gas() Gas { return systemData[s].gas }

// Restructured tells whether the system belongs to the high burnup structure
func (s System) Restructured() bool { return systemData[s].hbs }

// Population identifies a transported population
type Population int

// populations
const (
	Total    Population = iota // all gas in grain; single-population solver
	Solution                   // gas in dynamic solution
	Bubbles                    // gas in intragranular bubbles
	NumPopulations
)

var popNames = [NumPopulations]string{"total", "solution", "bubbles"}

// String returns the name of the population
func (p Population) String() string { return popNames[p] }

// NumModeValues is the length of the flat modes array
const NumModeValues = NumModes * int(NumSystems) * int(NumPopulations)

// Modes holds the amplitudes of the spectral series of all systems and populations.
// Block (s, p) starts at (s·NumPopulations + p)·NumModes
type Modes struct {
	data [NumModeValues]float64
}

// Block returns the modes of system s and population p
func (o *Modes) Block(s System, p Population) []float64 {
	if s < 0 || s >= NumSystems || p < 0 || p >= NumPopulations {
		chk.Panic("cannot get block of modes for system %d and population %d", s, p)
	}
	off := (int(s)*int(NumPopulations) + int(p)) * NumModes
	return o.data[off : off+NumModes : off+NumModes]
}

// Lookup returns the modes of a species given by name ("Xe", "Kr", "He", "Xe133", "Kr85m" or "XeHBS").
// An unknown name returns nil and an error
func (o *Modes) Lookup(species string, p Population) ([]float64, error) {
	for s := System(0); s < NumSystems; s++ {
		if systemData[s].key == species {
			if p < 0 || p >= NumPopulations {
				return nil, chk.Err("invalid population %d for species %q", p, species)
			}
			return o.Block(s, p), nil
		}
	}
	return nil, chk.Err("invalid species %q: there is no block of diffusion modes for it", species)
}

// Decode copies the flat modes array
func (o *Modes) Decode(modes []float64) {
	copy(o.data[:], modes)
}

// Encode writes the flat modes array
func (o *Modes) Encode(modes []float64) {
	copy(modes, o.data[:])
}
