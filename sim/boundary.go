// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gofgr/bub"
	"github.com/cpmech/gofgr/mdl"
	"github.com/cpmech/gofgr/mdl/gas"
	"github.com/cpmech/gofgr/slv"
	"github.com/cpmech/gofgr/state"
)

// keys of atoms per grain-boundary bubble
var interAtoms = map[state.Gas]state.Key{
	state.Xe: state.InterXeAtomsPerBubble,
	state.Kr: state.InterKrAtomsPerBubble,
	state.He: state.InterHeAtomsPerBubble,
}

// Boundary holds the microstructure of grain-boundary bubbles
type Boundary struct {
	Density   float64                 // bubbles per unit area (bub/m2)
	Area      float64                 // projected area per bubble (m2)
	Volume    float64                 // volume per bubble (m3)
	Coverage  float64                 // fractional coverage (-)
	Radius    float64                 // radius of curvature (m)
	Vacancies float64                 // vacancies per bubble
	Atoms     float64                 // atoms per bubble
	Gas       [state.NumGases]float64 // atoms per bubble of each gas
}

// load reads the final values of the microstructure
func (o *Boundary) load(v *state.Set) {
	o.Density = v.Final(state.InterBubbleConcentration)
	o.Area = v.Final(state.InterBubbleArea)
	o.Volume = v.Final(state.InterBubbleVolume)
	o.Coverage = v.Final(state.InterCoverage)
	o.Radius = v.Final(state.InterBubbleRadius)
	o.Vacancies = v.Final(state.InterVacanciesPerBubble)
	o.Atoms = v.Final(state.InterAtomsPerBubble)
	for g, k := range interAtoms {
		o.Gas[g] = v.Final(k)
	}
}

// commit writes the microstructure as final values
func (o *Boundary) commit(v *state.Set) {
	v.Set(state.InterBubbleConcentration, o.Density)
	v.Set(state.InterBubbleArea, o.Area)
	v.Set(state.InterBubbleVolume, o.Volume)
	v.Set(state.InterCoverage, o.Coverage)
	v.Set(state.InterBubbleRadius, o.Radius)
	v.Set(state.InterVacanciesPerBubble, o.Vacancies)
	v.Set(state.InterAtomsPerBubble, o.Atoms)
	for g, k := range interAtoms {
		v.Set(k, o.Gas[g])
	}
}

// bubbleGases returns the systems of stable gases in UO2; i.e. the gases filling grain-boundary bubbles
func (o *Context) bubbleGases() (systems []*gas.System) {
	for _, s := range o.Systems {
		if _, ok := interAtoms[s.Id.Gas()]; ok && !s.Id.Restructured() {
			systems = append(systems, s)
		}
	}
	return
}

// available returns the gas that left the grains and has not decayed, at the end and at the
// beginning of the step. Gas produced in the high burnup structure stays in its pores
func (o *Context) available(g state.Gas) (final, initial float64) {
	v := o.Vars
	prod, decayed, ingrain := v.Gas(g, state.Produced), v.Gas(g, state.Decayed), v.Gas(g, state.InGrain)
	final = prod.Final - decayed.Final - ingrain.Final
	initial = prod.Initial - decayed.Initial - ingrain.Initial
	if g == state.Xe {
		final -= v.Final(state.XeProducedHBS)
		initial -= v.Initial(state.XeProducedHBS)
	}
	return
}

// interGranularBubbles computes the inventories at the grain boundaries and the microstructure
// of grain-boundary bubbles. The microstructure is the fixed point of the absorption of
// vacancies (with rates from the current iterate) and the solution of the microstructure
// equations; it is computed on a working copy and committed at the end. The iterations stop
// when both the atoms at the boundaries per unit area and the bubble density change less
// than the tolerance
func interGranularBubbles(o *Context) (err error) {
	v := o.Vars
	rep := o.Report

	// inventories
	for _, g := range o.Gases() {
		avail, _ := o.available(g)
		gb := math.Max(0, avail-v.Gas(g, state.Released).Final)
		if o.Opts[state.GrainBoundaryBehaviour] == 0 {
			v.Gas(g, state.Released).Final += gb
			gb = 0
		}
		v.Gas(g, state.AtGrainBoundary).Final = gb
	}

	// check
	if _, err = mdl.GrainBoundaryVacancies(o.Env, 0, 0, 0); err != nil {
		return
	}
	rep.Converged = true
	var start Boundary
	start.load(v)
	if o.Opts[state.GrainBoundaryBehaviour] == 0 || start.Density <= 0 {
		return
	}

	// constants
	m := o.UO2
	Sv := o.SurfaceToVolume()
	if Sv <= 0 {
		return
	}
	N0, Ω := start.Density, m.SchottkyVolume
	gases := o.bubbleGases()
	gasVolume, gbTotal := 0.0, 0.0
	for _, s := range gases {
		gb := v.Gas(s.Id.Gas(), state.AtGrainBoundary).Final
		gasVolume += gb * s.Gas.VanDerWaalsVolume / Sv
		gbTotal += gb
	}

	// fixed point
	w := start
	prev, prevN := start.Atoms*N0, N0
	rep.Converged = false
	for it := 0; it < o.maxIt; it++ {
		rep.Iterations = it + 1

		// vacancies from the start of the step, with rates from the current iterate
		rec, err := mdl.GrainBoundaryVacancies(o.Env, w.Atoms, w.Radius, w.Coverage)
		if err != nil {
			return err
		}
		nv := math.Max(0, slv.LimitedGrowth(start.Vacancies, rec.Values(), o.Δt()))

		// microstructure
		out, err := bub.Solve(bub.Input{
			GasVolume:     gasVolume,
			VacancyVolume: nv * Ω * N0,
			Area0:         start.Area,
			Density0:      N0,
			Theta:         m.SemidihedralAngle,
			Phi:           m.ShapeFactor,
		})
		rep.Bubbles = out.Iterations
		if err != nil {
			o.tracef("grain-boundary bubbles: iteration %d: %v\n", it, err)
			rep.Failed = true
			break
		}

		// next iterate
		lagged := 0.0
		if w.Density > 0 {
			lagged = gbTotal / (w.Density * Sv)
		}
		next := Boundary{Density: out.Density, Area: out.Area, Volume: out.Volume, Coverage: out.Coverage, Vacancies: nv}
		if out.Density > 0 {
			next.Vacancies = nv * N0 / out.Density
			for _, s := range gases {
				g := s.Id.Gas()
				next.Gas[g] = v.Gas(g, state.AtGrainBoundary).Final / (out.Density * Sv)
				next.Atoms += next.Gas[g]
			}
		}
		next.Radius = math.Cbrt(3.0 * out.Volume / (4.0 * math.Pi * m.ShapeFactor))
		w = next

		// convergence of the gas at the boundaries and of the density
		metric := lagged * out.Density
		rep.Residual = math.Max(relativeChange(prev, metric), relativeChange(prevN, out.Density))
		o.tracef("grain-boundary bubbles: it = %3d  N·n = %13.6e  N = %13.6e  change = %g\n", it, metric, out.Density, rep.Residual)
		if rep.Residual < o.tol {
			rep.Converged = true
			break
		}
		prev, prevN = metric, out.Density
	}
	if !rep.Converged {
		o.tracef("grain-boundary bubbles: no convergence after %d iterations (change = %g)\n", rep.Iterations, rep.Residual)
	}
	w.commit(v)
	return
}

// release computes the gas released from the grain boundaries; with venting, the inventories at
// the grain boundaries follow the venting probability
func release(o *Context) (err error) {
	v := o.Vars
	var w Boundary
	w.load(v)
	Sv := o.SurfaceToVolume()
	Fsat := mdl.SaturationCoverage(o.Env)
	v.Set(state.InterSaturationCoverage, Fsat)
	bubbles := o.Opts[state.GrainBoundaryBehaviour] == 1

	switch o.Opts[state.GrainBoundaryVenting] {
	case 0:
		if bubbles && w.Coverage > Fsat && w.Coverage > 0 {
			s := Fsat / w.Coverage
			s15 := math.Pow(s, 1.5)
			w.Area *= s
			w.Volume *= s15
			w.Radius *= math.Sqrt(s)
			w.Vacancies *= s15
			w.Atoms *= s15
			for g := range interAtoms {
				w.Gas[g] *= s15
			}
			w.Coverage = w.Density * w.Area
			for _, s := range o.bubbleGases() {
				g := s.Id.Gas()
				v.Gas(g, state.AtGrainBoundary).Final = w.Density * w.Gas[g] * Sv
			}
			w.commit(v)
		}
	case 1:
		vent := o.use(mdl.GrainBoundaryVenting(o.Env))
		q := v.Final(state.InterIntactness)
		P0 := mdl.VentingProbability(q, mdl.VentedFraction(vent, v.Initial(state.InterCoverage)))
		f1 := mdl.VentedFraction(vent, w.Coverage)
		P1 := mdl.VentingProbability(q, f1)
		v.Set(state.VentedFraction, f1)
		v.Set(state.VentingProbability, P1)
		if bubbles {
			for _, g := range o.Gases() {
				avail1, avail0 := o.available(g)
				rec := o.use(mdl.GasRelease(o.Env, g, P0, P1, avail1-avail0))
				gb := v.Gas(g, state.AtGrainBoundary)
				gb.Final = slv.Decay(gb.Initial, rec.Get("decay_rate"), rec.Get("source_rate"), o.Δt())
				gb.Final = math.Max(0, math.Min(gb.Final, avail1))
			}
			if w.Density > 0 && Sv > 0 {
				w.Atoms = 0
				for _, s := range o.bubbleGases() {
					g := s.Id.Gas()
					w.Gas[g] = v.Gas(g, state.AtGrainBoundary).Final / (w.Density * Sv)
					w.Atoms += w.Gas[g]
				}
				w.commit(v)
			}
		}
	default:
		return o.Opts.InvalidSwitch(state.GrainBoundaryVenting)
	}

	// released
	for _, g := range o.Gases() {
		avail, _ := o.available(g)
		v.Gas(g, state.Released).Final = avail - v.Gas(g, state.AtGrainBoundary).Final
	}
	v.Set(state.XeInHBSPores, v.Final(state.XeProducedHBS)-v.Final(state.XeInGrainHBS))
	return
}

// relativeChange returns |a - b|/|b|, or 0 if both are zero
func relativeChange(a, b float64) float64 {
	if a == b {
		return 0
	}
	if b == 0 {
		return math.Inf(1)
	}
	return math.Abs((a - b) / b)
}
