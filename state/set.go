// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Set holds all state variables of one simulation call
type Set struct {
	vars [NumKeys]Variable
}

// NewSet returns a new set with names, units and output flags filled in and all values zero
func NewSet() (o *Set) {
	o = new(Set)
	for k := Key(0); k < NumKeys; k++ {
		o.vars[k] = Variable{Name: registry[k].name, Unit: registry[k].unit, Output: registry[k].output}
	}
	return
}

// At returns the variable identified by k
func (o *Set) At(k Key) *Variable {
	return &o.vars[k]
}

// Gas returns the inventory v of gas g
func (o *Set) Gas(g Gas, v GasVar) *Variable {
	return &o.vars[GasKey(g, v)]
}

// Final returns the final value of k
func (o *Set) Final(k Key) float64 {
	return o.vars[k].Final
}

// Initial returns the initial value of k
func (o *Set) Initial(k Key) float64 {
	return o.vars[k].Initial
}

// Set sets the final value of k
func (o *Set) Set(k Key, v float64) {
	o.vars[k].Final = v
}

// Clone returns a deep copy
func (o *Set) Clone() *Set {
	c := *o
	return &c
}

// Outputs returns the keys of all variables flagged for output
func (o *Set) Outputs() (keys []Key) {
	for k := Key(0); k < NumKeys; k++ {
		if o.vars[k].Output {
			keys = append(keys, k)
		}
	}
	return
}

// String lists all variables
func (o *Set) String() string {
	var b bytes.Buffer
	for k := Key(0); k < NumKeys; k++ {
		io.Ff(&b, "%v\n", o.vars[k])
	}
	return b.String()
}
