// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the construction of model parameter records. Each routine reads the
// current state and returns the parameters that the matching solver call needs, in the order
// the solver expects them
package mdl

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Record holds the parameters of one model for the current time step
type Record struct {
	Name string     // name of model; e.g. "Gas diffusion - Xe in UO2"
	Ref  string     // provenance of correlation
	Prms dbf.Params // parameters, in the order used by the solver
}

// NewRecord returns a new record with no parameters
func NewRecord(name, ref string) *Record {
	return &Record{Name: name, Ref: ref}
}

// Add appends a parameter
func (o *Record) Add(name string, value float64) *Record {
	o.Prms = append(o.Prms, &dbf.P{N: name, V: value})
	return o
}

// Values returns the values of all parameters in insertion order
func (o *Record) Values() (v []float64) {
	v = make([]float64, len(o.Prms))
	for i, p := range o.Prms {
		v[i] = p.V
	}
	return
}

// Get returns the value of parameter name. It panics if the parameter does not exist
func (o *Record) Get(name string) float64 {
	p := o.Prms.Find(name)
	if p == nil {
		chk.Panic("record %q does not have parameter %q", o.Name, name)
	}
	return p.V
}

// Empty tells whether the record has no parameters; i.e. the model is switched off
func (o *Record) Empty() bool {
	return len(o.Prms) == 0
}

// String returns a representation of the record
func (o *Record) String() string {
	var b bytes.Buffer
	io.Ff(&b, "%s", o.Name)
	if o.Ref != "" {
		io.Ff(&b, " (%s)", o.Ref)
	}
	io.Ff(&b, "\n")
	for _, p := range o.Prms {
		io.Ff(&b, "  %-20s = %13.6e\n", p.N, p.V)
	}
	return b.String()
}
