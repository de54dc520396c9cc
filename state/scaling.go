// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Factor identifies a scaling factor (sensitivity/uncertainty multiplier)
type Factor int

// scaling factors. The order is the order of the flat scaling array
const (
	SfResolutionRate Factor = iota
	SfTrappingRate
	SfNucleationRate
	SfDiffusivity
	SfTemperature
	SfFissionRate
	SfCentParameter
	SfHeliumProductionRate
	SfScrewParameter
	SfSpanParameter
	NumFactors
)

// FactorNames holds the names of the scaling factors, as used in input files
var FactorNames = [NumFactors]string{
	"resolution_rate",
	"trapping_rate",
	"nucleation_rate",
	"diffusivity",
	"temperature",
	"fission_rate",
	"cent_parameter",
	"helium_production_rate",
	"screw_parameter",
	"span_parameter",
}

// Scaling holds all scaling factors
type Scaling [NumFactors]float64

// DefaultScaling returns unit factors
func DefaultScaling() (o Scaling) {
	for i := range o {
		o[i] = 1
	}
	return
}
