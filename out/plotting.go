// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PltEntity holds the data of one curve (X vs Y)
type PltEntity struct {
	Alias string    // legend
	X     []float64 // x-values
	Y     []float64 // y-values
}

// SplotDat holds the data of one figure
type SplotDat struct {
	Title string       // title of figure
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // curves
}

// Splot returns a figure with the histories of keys versus time. All keys should have the
// same unit
func (o *Results) Splot(title string, keys ...state.Key) (s *SplotDat, err error) {
	s = &SplotDat{Title: title, Xlbl: "Time (h)"}
	for _, k := range keys {
		y, ok := o.Values[k]
		if !ok {
			return nil, chk.Err("variable %q is not recorded", k.Name())
		}
		if s.Ylbl == "" {
			s.Ylbl = k.Unit()
		}
		s.Data = append(s.Data, &PltEntity{Alias: k.Name(), X: o.Times, Y: y})
	}
	return
}

// Save draws the figure and saves it in dirout/fn. The format follows the extension of fn;
// e.g. ".png" or ".svg"
func (o *SplotDat) Save(dirout, fn string) (err error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	for i, d := range o.Data {
		if len(d.X) != len(d.Y) {
			return chk.Err("curve %q has %d x-values and %d y-values", d.Alias, len(d.X), len(d.Y))
		}
		xy := make(plotter.XYs, len(d.X))
		for j := range d.X {
			xy[j].X, xy[j].Y = d.X[j], d.Y[j]
		}
		line, err := plotter.NewLine(xy)
		if err != nil {
			return chk.Err("cannot draw curve %q: %v", d.Alias, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(d.Alias, line)
	}
	p.Legend.Top = true
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q: %v", dirout, err)
	}
	path := filepath.Join(dirout, fn)
	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return chk.Err("cannot save figure %q: %v", path, err)
	}
	io.Pfblue2("file <%s> written\n", path)
	return
}

// PlotDefault saves the figures of the release fraction, the coverage and the swelling
// in dirout with names fnkey_*.png
func (o *Results) PlotDefault(dirout, fnkey string) (err error) {
	figs := []struct {
		suffix string
		title  string
		keys   []state.Key
	}{
		{"fgr", "Fission gas release", []state.Key{state.FissionGasRelease}},
		{"coverage", "Grain-boundary coverage", []state.Key{state.InterCoverage, state.InterSaturationCoverage}},
		{"swelling", "Gas swelling", []state.Key{state.IntraSwelling, state.InterSwelling}},
	}
	for _, f := range figs {
		s, err := o.Splot(f.title, f.keys...)
		if err != nil {
			return err
		}
		if err = s.Save(dirout, io.Sf("%s_%s.png", fnkey, f.suffix)); err != nil {
			return err
		}
	}
	return
}
