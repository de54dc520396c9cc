// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	goio "io"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/io"
)

// Table holds a tab-separated table with one row per step. The first columns are the time and
// the history variables flagged for output
type Table struct {
	Keys []state.Key // columns with state variables
	buf  bytes.Buffer
	rows int
}

// NewTable returns a new table with the header written. Nil keys means all variables flagged
// for output
func NewTable(keys []state.Key) (o *Table) {
	if keys == nil {
		keys = state.NewSet().Outputs()
	}
	o = &Table{Keys: keys}
	io.Ff(&o.buf, "Time (h)")
	for _, h := range historyColumns() {
		v := state.NewHistory().At(h)
		io.Ff(&o.buf, "\t%s %s", v.Name, v.Unit)
	}
	for _, k := range keys {
		io.Ff(&o.buf, "\t%s %s", k.Name(), k.Unit())
	}
	io.Ff(&o.buf, "\n")
	return
}

// historyColumns returns the history variables flagged for output
func historyColumns() (keys []state.HistKey) {
	h := state.NewHistory()
	for k := state.HistKey(0); k < state.NumHistVars; k++ {
		if h.At(k).Output {
			keys = append(keys, k)
		}
	}
	return
}

// Append writes the row of the current step
func (o *Table) Append(f *state.Frame) {
	io.Ff(&o.buf, "%e", f.Hist.Time)
	for _, h := range historyColumns() {
		io.Ff(&o.buf, "\t%e", f.Hist.At(h).Final)
	}
	for _, k := range o.Keys {
		io.Ff(&o.buf, "\t%e", f.Vars.Final(k))
	}
	io.Ff(&o.buf, "\n")
	o.rows++
}

// Rows returns the number of rows written, header excluded
func (o *Table) Rows() int { return o.rows }

// String returns the table
func (o *Table) String() string { return o.buf.String() }

// WriteTo writes the table to w
func (o *Table) WriteTo(w goio.Writer) (n int64, err error) {
	m, err := w.Write(o.buf.Bytes())
	return int64(m), err
}

// Save saves the table in dirout/fn
func (o *Table) Save(dirout, fn string) {
	io.WriteStringToFileD(dirout, fn, o.buf.String())
}
