// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// HistKey identifies a driving (history) variable
type HistKey int

// history variables
const (
	Temperature       HistKey = iota // (K)
	FissionRate                      // (fiss/m3 s)
	HydrostaticStress                // (MPa)
	SteamPressure                    // (atm)
	NumHistVars
)

var histNames = [NumHistVars][2]string{
	{"Temperature", "(K)"},
	{"Fission rate", "(fiss/m3 s)"},
	{"Hydrostatic stress", "(MPa)"},
	{"Steam pressure", "(atm)"},
}

// flat history array
//   0,1 T      2,3 F      4,5 σh      6,7 steam  (initial, final)
//   8 time (h)   9 step number   10 time step (s)
const (
	histTime     = 8
	histStep     = 9
	histTimeStep = 10

	// NumHistory is the length of the flat history array
	NumHistory = 11
)

// History holds the driving conditions of the current time step
type History struct {
	Vars     [NumHistVars]Variable // values at the beginning and at the end of the step
	Time     float64               // time at the end of the step (h)
	Step     int                   // step number
	TimeStep float64               // time step (s)
}

// NewHistory returns a new History with names and units set
func NewHistory() (o *History) {
	o = new(History)
	for i := HistKey(0); i < NumHistVars; i++ {
		o.Vars[i] = Variable{Name: histNames[i][0], Unit: histNames[i][1], Output: i == Temperature || i == FissionRate}
	}
	return
}

// At returns the history variable k
func (o *History) At(k HistKey) *Variable {
	return &o.Vars[k]
}

// T returns the temperature at the end of the step
func (o *History) T() float64 { return o.Vars[Temperature].Final }

// F returns the fission rate at the end of the step
func (o *History) F() float64 { return o.Vars[FissionRate].Final }

// Decode reads the flat history array
func (o *History) Decode(hist []float64) {
	for i := HistKey(0); i < NumHistVars; i++ {
		o.Vars[i].Initial = hist[2*i]
		o.Vars[i].Final = hist[2*i+1]
	}
	o.Time = hist[histTime]
	o.Step = int(hist[histStep])
	o.TimeStep = hist[histTimeStep]
}

// Encode writes the flat history array
func (o *History) Encode(hist []float64) {
	for i := HistKey(0); i < NumHistVars; i++ {
		hist[2*i] = o.Vars[i].Initial
		hist[2*i+1] = o.Vars[i].Final
	}
	hist[histTime] = o.Time
	hist[histStep] = float64(o.Step)
	hist[histTimeStep] = o.TimeStep
}
