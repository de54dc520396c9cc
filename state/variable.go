// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the per-call state of a fission gas simulation:
// variables, history, options, scaling factors and diffusion modes, together
// with the fixed-index codec used at the boundary with the calling code
package state

import "github.com/cpmech/gosl/io"

// Variable holds a scalar quantity known at the beginning (Initial) and at the end (Final) of
// the current time step. Stages read Initial and write Final.
type Variable struct {
	Name    string  // name; e.g. "Xe produced"
	Unit    string  // unit of measure; e.g. "(at/m3)"
	Initial float64 // value at the beginning of the time step
	Final   float64 // value at the end of the time step
	Output  bool    // write this variable to output tables
}

// Increment returns Final - Initial
func (o *Variable) Increment() float64 {
	return o.Final - o.Initial
}

// Reset sets both Initial and Final to v
func (o *Variable) Reset(v float64) {
	o.Initial, o.Final = v, v
}

// SetConstant pins the variable for the current step
func (o *Variable) SetConstant() {
	o.Final = o.Initial
}

// String returns a one-line representation
func (o Variable) String() string {
	return io.Sf("%-45s %-14s %13.6e -> %13.6e", o.Name, o.Unit, o.Initial, o.Final)
}
