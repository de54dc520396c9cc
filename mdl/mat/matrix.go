// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the properties of fuel matrices (UO2 and the high burnup structure)
package mat

import (
	"math"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// physical constants
const (
	Boltzmann   = 1.380651e-23 // (J/K)
	GasConstant = 8.314        // (J/mol K)
	Avogadro    = 6.02214076e23
)

// Geometry holds geometrical properties of grains and grain boundaries
type Geometry struct {
	GrainRadius       float64 // (m)
	LatticeParameter  float64 // (m)
	SemidihedralAngle float64 // (rad)
	ShapeFactor       float64 // lenticular shape factor φ(θ)
	GBThickness       float64 // (m)
	FFRange           float64 // range of fission fragments (m)
	FFInfluenceRadius float64 // radius of influence of fission fragment tracks (m)
}

// Thermo holds thermodynamic properties
type Thermo struct {
	TheoreticalDensity float64 // (kg/m3)
	SurfaceTension     float64 // (J/m2)
	SchottkyVolume     float64 // (m3)
	OISVolume          float64 // octahedral interstitial site volume (m3)
	HealingTemperature float64 // threshold for healing of micro-cracks (K)
}

// Fracture holds mechanical properties used by the rupture criteria
type Fracture struct {
	FractureEnergy float64 // grain boundary fracture energy (J/m2)
	PoissonRatio   float64 // (-)
	ElasticModulus float64 // (MPa)
}

// Transport holds properties that depend on the current conditions
type Transport struct {
	GBVacancyDiffusivity float64 // (m2/s)
}

// Matrix holds all properties of a fuel matrix. Geometry and Thermo are constant; Fracture and
// Transport are evaluated with the conditions at the end of the step
type Matrix struct {
	Name string
	Ref  string
	Geometry
	Thermo
	Fracture
	Transport
}

// ShapeFactor returns the volume factor of lenticular bubbles with semidihedral angle θ
//
//   φ(θ) = 1 - 1.5·cos(θ) + 0.5·cos³(θ)
//
func ShapeFactor(θ float64) float64 {
	c := math.Cos(θ)
	return 1.0 - 1.5*c + 0.5*c*c*c
}

// UO2 returns the UO2 matrix with properties evaluated with the conditions in f
func UO2(f *state.Frame) (o *Matrix, err error) {
	o = &Matrix{Name: "UO2", Ref: "UO2: Olander (1976); Jernkvist (2020); Barani et al. (2017)"}
	o.GrainRadius = f.Vars.Final(state.GrainRadius)
	o.LatticeParameter = 5.47e-10
	o.SemidihedralAngle = 0.872664626
	o.ShapeFactor = ShapeFactor(o.SemidihedralAngle)
	o.GBThickness = 5e-10
	o.FFRange = 6e-6
	o.FFInfluenceRadius = 1e-9
	o.TheoreticalDensity = 10960
	o.SurfaceTension = 0.7
	o.SchottkyVolume = 4.09e-29
	o.OISVolume = 7.8e-30
	o.HealingTemperature = 1273.15
	o.FractureEnergy = 2.0
	o.PoissonRatio = 0.316
	err = o.Update(f)
	return
}

// UO2HBS returns the restructured UO2 matrix (high burnup structure)
func UO2HBS(f *state.Frame) (o *Matrix, err error) {
	o, err = UO2(f)
	if err != nil {
		return
	}
	return o.Restructured(), nil
}

// Restructured returns a copy of the matrix with the grains of the high burnup structure
func (o *Matrix) Restructured() *Matrix {
	m := *o
	m.Name = o.Name + "HBS"
	m.Ref = "UO2HBS: Barani et al. (2020)"
	m.GrainRadius = 150e-9
	return &m
}

// Update evaluates the properties that depend on the conditions at the end of the step
func (o *Matrix) Update(f *state.Frame) (err error) {
	T := f.Hist.T() * f.Scale[state.SfTemperature]
	o.GBVacancyDiffusivity, err = GBVacancyDiffusivity(&f.Opts, T)
	if err != nil {
		return
	}
	porosity := 0.0
	if ρ := f.Vars.Final(state.FuelDensity); ρ > 0 && ρ < o.TheoreticalDensity {
		porosity = 1.0 - ρ/o.TheoreticalDensity
	}
	o.ElasticModulus, err = ElasticModulus(&f.Opts, porosity, T, f.Vars.Final(state.Burnup))
	return
}

// Init overrides properties with the given parameters. Unknown names are an error
func (o *Matrix) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "grain_radius":
			o.GrainRadius = p.V
		case "lattice_parameter":
			o.LatticeParameter = p.V
		case "semidihedral_angle":
			o.SemidihedralAngle = p.V
			o.ShapeFactor = ShapeFactor(p.V)
		case "gb_thickness":
			o.GBThickness = p.V
		case "ff_range":
			o.FFRange = p.V
		case "ff_influence_radius":
			o.FFInfluenceRadius = p.V
		case "theoretical_density":
			o.TheoreticalDensity = p.V
		case "surface_tension":
			o.SurfaceTension = p.V
		case "schottky_volume":
			o.SchottkyVolume = p.V
		case "ois_volume":
			o.OISVolume = p.V
		case "healing_temperature":
			o.HealingTemperature = p.V
		case "fracture_energy":
			o.FractureEnergy = p.V
		case "poisson_ratio":
			o.PoissonRatio = p.V
		default:
			return chk.Err("matrix %s: parameter %q is not available", o.Name, p.N)
		}
	}
	if o.GrainRadius < 0 || o.SchottkyVolume <= 0 || o.GBThickness <= 0 || o.ShapeFactor <= 0 {
		return chk.Err("matrix %s: invalid parameters: {grain_radius=%g, schottky_volume=%g, gb_thickness=%g, φ=%g}", o.Name, o.GrainRadius, o.SchottkyVolume, o.GBThickness, o.ShapeFactor)
	}
	return
}

// GetPrms returns the parameters accepted by Init with the current values
func (o *Matrix) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "grain_radius", V: o.GrainRadius},
		&dbf.P{N: "lattice_parameter", V: o.LatticeParameter},
		&dbf.P{N: "semidihedral_angle", V: o.SemidihedralAngle},
		&dbf.P{N: "gb_thickness", V: o.GBThickness},
		&dbf.P{N: "ff_range", V: o.FFRange},
		&dbf.P{N: "ff_influence_radius", V: o.FFInfluenceRadius},
		&dbf.P{N: "theoretical_density", V: o.TheoreticalDensity},
		&dbf.P{N: "surface_tension", V: o.SurfaceTension},
		&dbf.P{N: "schottky_volume", V: o.SchottkyVolume},
		&dbf.P{N: "ois_volume", V: o.OISVolume},
		&dbf.P{N: "healing_temperature", V: o.HealingTemperature},
		&dbf.P{N: "fracture_energy", V: o.FractureEnergy},
		&dbf.P{N: "poisson_ratio", V: o.PoissonRatio},
	}
}
