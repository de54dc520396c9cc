// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crit implements criteria for the critical pressure of grain-boundary bubbles.
//
//  Reference: Chakraborty et al., JNM 452 (2014) 95-101; Jernkvist, JNM 537 (2020) 152225
package crit

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Input holds the state of grain-boundary bubbles read by the criteria
type Input struct {
	Coverage       float64 // fractional coverage of grain boundaries (-)
	Radius         float64 // radius of curvature of bubbles (m)
	Theta          float64 // semidihedral angle (rad)
	SurfaceTension float64 // (J/m2)
	Stress         float64 // hydrostatic stress (MPa)
	Toughness      float64 // fracture toughness (MPa·m^½)
}

// Valid tells whether the criteria can be evaluated; i.e. 0 < Coverage < 1 and Radius > 0
func (o *Input) Valid() bool {
	return o.Coverage > 0 && o.Coverage < 1 && o.Radius > 0
}

// Model defines critical pressure criteria
type Model interface {
	Pressure(in *Input) float64 // critical pressure (Pa)
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// names of models selected by the critical_pressure option (index = option value)
var byOption = []string{"", "first", "second", "third"}

// New returns a new model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("critical pressure model %q is not available", name)
	}
	return allocator(), nil
}

// NameByOption returns the name of the model selected by an option value; "" means no model.
// The second result is false if the value does not select any model
func NameByOption(value int) (string, bool) {
	if value < 0 || value >= len(byOption) {
		return "", false
	}
	return byOption[value], true
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Toughness returns the fracture toughness (MPa·m^½) from the elastic modulus E (MPa), the
// grain-boundary fracture energy G (J/m2) and the Poisson ratio ν
//
//   K_Ic = √(E·G/(1 - ν²))
//
func Toughness(E, G, ν float64) float64 {
	return math.Sqrt(E*1e6*G/(1.0-ν*ν)) * 1e-6
}

// EquilibriumPressure returns the capillary pressure of lenticular bubbles minus the hydrostatic
// stress (Pa)
//
//   p_eq = 2γ·(1 - cosθ)/r - σ
//
func EquilibriumPressure(in *Input) float64 {
	return 2.0*in.SurfaceTension*(1.0-math.Cos(in.Theta))/in.Radius - in.Stress*1e6
}

// intensity returns the dimensionless stress intensity factor √(4/√F - 4)
func intensity(F float64) float64 {
	return math.Sqrt(4.0/math.Sqrt(F) - 4.0)
}

// intensification returns the stress intensification due to the bubble shape 1 + 2·sinθ/(1 - cosθ)
func intensification(θ float64) float64 {
	return 1.0 + 2.0*math.Sin(θ)/(1.0-math.Cos(θ))
}

// FractureStress returns the stress (MPa) needed to propagate a crack between bubbles
//
//   σ_f = K_Ic·√(1/(πr)) / (f·s)
//
func FractureStress(in *Input) float64 {
	return in.Toughness * math.Sqrt(1.0/(math.Pi*in.Radius)) / (intensity(in.Coverage) * intensification(in.Theta))
}
