// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"path/filepath"
	"runtime"

	"github.com/cpmech/gosl/io"
)

// Option identifies a model selector
type Option int

// model selectors. The order is the order of the flat options array
const (
	GrainGrowth Option = iota
	FissionGasDiffusivity
	DiffusionSolver
	IntraGranularBubbles
	ResolutionRate
	TrappingRate
	NucleationRate
	OutputFormat
	GrainBoundaryVacancyDiffusivity
	GrainBoundaryBehaviour
	GrainBoundaryMicroCracking
	FuelMatrix
	GrainBoundaryVenting
	RadioactiveFissionGas
	Helium
	HeliumDiffusivity
	GrainBoundarySweeping
	HighBurnupStructureFormation
	HighBurnupStructurePorosity
	HeliumProductionRate
	StoichiometryDeviationModel
	CriticalPressure
	ElasticModulus
	NumOptions
)

// OptionNames holds the names of the selectors, as used in input files
var OptionNames = [NumOptions]string{
	"grain_growth",
	"fission_gas_diffusivity",
	"diffusion_solver",
	"intragranular_bubbles",
	"resolution_rate",
	"trapping_rate",
	"nucleation_rate",
	"output",
	"gb_vacancy_diffusivity",
	"gb_behaviour",
	"gb_microcracking",
	"fuel_matrix",
	"gb_venting",
	"radioactive_fission_gas",
	"helium",
	"helium_diffusivity",
	"gb_sweeping",
	"hbs_formation",
	"hbs_porosity",
	"helium_production_rate",
	"stoichiometry_deviation",
	"critical_pressure",
	"elastic_modulus",
}

// String returns the name of the selector
func (o Option) String() string { return OptionNames[o] }

// Options holds all model selectors
type Options [NumOptions]int

// DefaultOptions returns the baseline set of selectors
func DefaultOptions() (o Options) {
	o[GrainGrowth] = 0
	o[FissionGasDiffusivity] = 1
	o[DiffusionSolver] = 1
	o[IntraGranularBubbles] = 1
	o[ResolutionRate] = 1
	o[TrappingRate] = 1
	o[NucleationRate] = 1
	o[GrainBoundaryVacancyDiffusivity] = 1
	o[GrainBoundaryBehaviour] = 1
	o[GrainBoundaryMicroCracking] = 1
	return
}

// On tells whether the selector is non-zero
func (o *Options) On(opt Option) bool { return o[opt] != 0 }

// SwitchError reports a selector value without implementation
type SwitchError struct {
	Option string // name of selector
	Value  int    // offending value
	File   string // file where the selector was evaluated
	Line   int    // line in File
}

// Error implements error
func (o *SwitchError) Error() string {
	return io.Sf("invalid switch: %s = %d (%s:%d)", o.Option, o.Value, o.File, o.Line)
}

// InvalidSwitch returns a SwitchError for the current value of opt, recording the caller's location
func (o *Options) InvalidSwitch(opt Option) error {
	_, file, line, _ := runtime.Caller(1)
	return &SwitchError{Option: opt.String(), Value: o[opt], File: filepath.Base(file), Line: line}
}
