// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import "math"

// First implements the criterion with the crack driven by the interaction of neighbour bubbles
//
//   p_c = p_eq + K_Ic·√(1/(πr)) / (f·s)
//
type First struct{}

// Second implements the criterion with shielding by the bubble shape
//
//   p_c = p_eq - K_Ic·√(1/(πr))·(π/(2s) - 1/f)
//
type Second struct{}

// Third implements the criterion with the crack length equal to the bubble radius
//
//   p_c = p_eq + K_Ic·√(π/r)·(1/s)·(1 - 2/(πf))
//
type Third struct{}

// add models to factory
func init() {
	allocators["first"] = func() Model { return new(First) }
	allocators["second"] = func() Model { return new(Second) }
	allocators["third"] = func() Model { return new(Third) }
}

// Pressure returns the critical pressure (Pa)
func (o *First) Pressure(in *Input) float64 {
	f, s := intensity(in.Coverage), intensification(in.Theta)
	return EquilibriumPressure(in) + 1e6*in.Toughness*math.Sqrt(1.0/(math.Pi*in.Radius))/(f*s)
}

// Pressure returns the critical pressure (Pa)
func (o *Second) Pressure(in *Input) float64 {
	f, s := intensity(in.Coverage), intensification(in.Theta)
	return EquilibriumPressure(in) - 1e6*in.Toughness*math.Sqrt(1.0/(math.Pi*in.Radius))*(math.Pi/(2.0*s)-1.0/f)
}

// Pressure returns the critical pressure (Pa)
func (o *Third) Pressure(in *Input) float64 {
	f, s := intensity(in.Coverage), intensification(in.Theta)
	return EquilibriumPressure(in) + 1e6*in.Toughness*math.Sqrt(math.Pi/in.Radius)/s*(1.0-2.0/(f*math.Pi))
}
