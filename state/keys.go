// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Key identifies a state variable
type Key int

// scalar state variables
const (
	GrainRadius Key = iota

	// intragranular bubbles
	IntraBubbleConcentration
	IntraBubbleRadius
	IntraXeAtomsPerBubble
	IntraKrAtomsPerBubble
	IntraHeAtomsPerBubble
	IntraSwelling

	// intergranular bubbles
	InterBubbleConcentration
	InterXeAtomsPerBubble
	InterKrAtomsPerBubble
	InterHeAtomsPerBubble
	InterAtomsPerBubble
	InterVacanciesPerBubble
	InterBubbleRadius
	InterBubbleArea
	InterBubbleVolume
	InterCoverage
	InterSaturationCoverage
	InterSwelling
	InterIntactness
	VentedFraction
	VentingProbability

	// fuel
	Burnup
	EffectiveBurnup
	SpecificPower
	FuelDensity
	IrradiationTime
	StoichiometryDeviation
	EquilibriumStoichiometry
	FuelOxygenPressure
	GapOxygenPressure
	RestructuredFraction
	HBSPorosity
	XeProducedHBS
	XeInGrainHBS
	XeInHBSPores

	// figures of merit
	InterBubblePressure
	EquilibriumBubblePressure
	CriticalBubblePressure
	FractureToughness
	FractureStress
	FissionGasRelease
	Xe133RB
	Kr85mRB
	HeFractionalRelease
	HeReleaseRate
	OxygenPotential

	numScalarKeys
)

// Gas identifies a gas species tracked in the state
type Gas int

// gases
const (
	Xe Gas = iota
	Kr
	He
	Xe133
	Kr85m
	NumGases
)

// GasVar identifies one inventory of a gas
type GasVar int

// gas inventories
const (
	Produced GasVar = iota
	InGrain
	InSolution
	InBubbles
	Decayed
	AtGrainBoundary
	Released
	NumGasVars
)

// NumKeys is the total number of state variables
const NumKeys = numScalarKeys + Key(NumGases)*Key(NumGasVars)

// GasKey returns the key of the inventory v of gas g
func GasKey(g Gas, v GasVar) Key {
	return numScalarKeys + Key(g)*Key(NumGasVars) + Key(v)
}

// GasNames holds the names of the gases
var GasNames = [NumGases]string{"Xe", "Kr", "He", "Xe133", "Kr85m"}

// String returns the name of the gas
func (g Gas) String() string { return GasNames[g] }

// Stable tells whether the gas is stable
func (g Gas) Stable() bool { return g == Xe || g == Kr || g == He }

// keyData holds the static description of a state variable
type keyData struct {
	name   string // name
	unit   string // unit of measure
	index  int    // position in the flat variables array; -1 means per-call only
	output bool   // written to output
}

// NumVariables is the length of the flat variables array
const NumVariables = 80

// registry of state variables. The position of each entry in the flat variables
// array (index) is part of the contract with the calling code
var registry [NumKeys]keyData

var scalarKeys = [numScalarKeys]keyData{
	GrainRadius:               {"Grain radius", "(m)", 0, true},
	IntraBubbleConcentration:  {"Intragranular bubble concentration", "(bub/m3)", 19, true},
	IntraBubbleRadius:         {"Intragranular bubble radius", "(m)", 20, true},
	IntraXeAtomsPerBubble:     {"Intragranular Xe atoms per bubble", "(at/bub)", 21, false},
	IntraKrAtomsPerBubble:     {"Intragranular Kr atoms per bubble", "(at/bub)", 22, false},
	IntraHeAtomsPerBubble:     {"Intragranular He atoms per bubble", "(at/bub)", 23, false},
	IntraSwelling:             {"Intragranular gas swelling", "(/)", 24, true},
	InterBubbleConcentration:  {"Intergranular bubble concentration", "(bub/m2)", 25, true},
	InterXeAtomsPerBubble:     {"Intergranular Xe atoms per bubble", "(at/bub)", 26, false},
	InterKrAtomsPerBubble:     {"Intergranular Kr atoms per bubble", "(at/bub)", 27, false},
	InterHeAtomsPerBubble:     {"Intergranular He atoms per bubble", "(at/bub)", 28, false},
	InterAtomsPerBubble:       {"Intergranular atoms per bubble", "(at/bub)", 29, true},
	InterVacanciesPerBubble:   {"Intergranular vacancies per bubble", "(vac/bub)", 30, true},
	InterBubbleRadius:         {"Intergranular bubble radius", "(m)", 31, true},
	InterBubbleArea:           {"Intergranular bubble area", "(m2)", 32, true},
	InterBubbleVolume:         {"Intergranular bubble volume", "(m3)", 33, true},
	InterCoverage:             {"Intergranular fractional coverage", "(/)", 34, true},
	InterSaturationCoverage:   {"Intergranular saturation fractional coverage", "(/)", 35, true},
	InterSwelling:             {"Intergranular gas swelling", "(/)", 36, true},
	InterIntactness:           {"Intergranular fractional intactness", "(/)", 37, true},
	Burnup:                    {"Burnup", "(MWd/kgUO2)", 38, true},
	EffectiveBurnup:           {"Effective burnup", "(MWd/kgUO2)", 39, true},
	FuelDensity:               {"Fuel density", "(kg/m3)", 40, false},
	IrradiationTime:           {"Irradiation time", "(h)", 41, false},
	StoichiometryDeviation:    {"Stoichiometry deviation", "(/)", 42, true},
	EquilibriumStoichiometry:  {"Equilibrium stoichiometry deviation", "(/)", 43, false},
	FuelOxygenPressure:        {"Fuel oxygen partial pressure", "(MPa)", 44, false},
	GapOxygenPressure:         {"Gap oxygen partial pressure", "(atm)", 45, false},
	VentedFraction:            {"Intergranular vented fraction", "(/)", 46, false},
	VentingProbability:        {"Intergranular venting probability", "(/)", 47, false},
	RestructuredFraction:      {"Restructured volume fraction", "(/)", 55, true},
	HBSPorosity:               {"HBS porosity", "(/)", 56, true},
	XeProducedHBS:             {"Xe produced in HBS", "(at/m3)", 64, false},
	XeInGrainHBS:              {"Xe in grain HBS", "(at/m3)", 65, false},
	XeInHBSPores:              {"Xe in HBS pores", "(at/m3)", 66, false},
	InterBubblePressure:       {"Intergranular bubble pressure", "(MPa)", 67, true},
	CriticalBubblePressure:    {"Critical intergranular bubble pressure", "(MPa)", 68, false},
	FractureToughness:         {"Fracture toughness", "(MPa m0.5)", 69, false},
	FissionGasRelease:         {"Fission gas release", "(/)", 70, true},
	Xe133RB:                   {"Xe133 R/B", "(/)", 71, false},
	Kr85mRB:                   {"Kr85m R/B", "(/)", 72, false},
	HeFractionalRelease:       {"He fractional release", "(/)", 73, false},
	HeReleaseRate:             {"He release rate", "(at/m3 s)", 74, false},
	OxygenPotential:           {"Fuel oxygen potential", "(kJ/mol)", 75, false},
	SpecificPower:             {"Specific power", "(MW/kg)", 76, false},
	FractureStress:            {"Fracture stress", "(MPa)", 77, false},
	EquilibriumBubblePressure: {"Equilibrium bubble pressure", "(MPa)", 78, false},
}

// flat indices of gas inventories. Decayed amounts of stable gases are not persisted
var gasIndex = [NumGases][NumGasVars]int{
	Xe:    {1, 2, 3, 4, -1, 5, 6},
	Kr:    {7, 8, 9, 10, -1, 11, 12},
	He:    {13, 14, 15, 16, -1, 17, 18},
	Xe133: {48, 49, 50, 51, 52, 53, 54},
	Kr85m: {57, 58, 59, 60, 61, 62, 63},
}

var gasVarNames = [NumGasVars]string{
	"produced",
	"in grain",
	"in intragranular solution",
	"in intragranular bubbles",
	"decayed",
	"at grain boundary",
	"released",
}

func init() {
	copy(registry[:], scalarKeys[:])
	for g := Gas(0); g < NumGases; g++ {
		for v := GasVar(0); v < NumGasVars; v++ {
			output := v == Produced || v == InGrain || v == AtGrainBoundary || v == Released
			registry[GasKey(g, v)] = keyData{GasNames[g] + " " + gasVarNames[v], "(at/m3)", gasIndex[g][v], output}
		}
	}
}

// Name returns the name of the variable
func (k Key) Name() string { return registry[k].name }

// Unit returns the unit of measure of the variable
func (k Key) Unit() string { return registry[k].unit }

// Index returns the position of the variable in the flat variables array or -1
func (k Key) Index() int { return registry[k].index }

// KeyByName finds a key by the name of the variable
func KeyByName(name string) (Key, bool) {
	for k := Key(0); k < NumKeys; k++ {
		if registry[k].name == name {
			return k, true
		}
	}
	return -1, false
}
