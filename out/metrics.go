// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gofgr/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects statistics of the solvers over many simulation calls. It satisfies
// sim.Recorder and may be shared by concurrent simulations
type Metrics struct {
	Registry     *prometheus.Registry
	Steps        prometheus.Counter     // number of calls
	Iterations   prometheus.Histogram   // iterations of the fixed point for grain-boundary bubbles
	Residual     prometheus.Gauge       // last relative change of the fixed point
	NonConverged *prometheus.CounterVec // calls with a solver stopped at the cap, by solver
	Newton       prometheus.Histogram   // iterations of Newton solves
}

// NewMetrics returns a new set of metrics registered in its own registry
func NewMetrics() (o *Metrics) {
	o = &Metrics{
		Registry: prometheus.NewRegistry(),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gofgr",
			Name:      "steps_total",
			Help:      "Number of time steps simulated.",
		}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gofgr",
			Name:      "boundary_iterations",
			Help:      "Iterations of the fixed point for the microstructure of grain-boundary bubbles.",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100, 200, 500},
		}),
		Residual: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gofgr",
			Name:      "boundary_residual",
			Help:      "Last relative change of the fixed point for grain-boundary bubbles.",
		}),
		NonConverged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofgr",
			Name:      "nonconverged_total",
			Help:      "Solves stopped at the iteration cap or failed.",
		}, []string{"solver"}),
		Newton: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gofgr",
			Name:      "newton_iterations",
			Help:      "Iterations of the Newton solves of thermochemistry.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
	}
	o.Registry.MustRegister(o.Steps, o.Iterations, o.Residual, o.NonConverged, o.Newton)
	return
}

// Observe records the report of one call
func (o *Metrics) Observe(r *sim.Report) {
	o.Steps.Inc()
	o.Iterations.Observe(float64(r.Iterations))
	o.Residual.Set(r.Residual)
	if !r.Converged {
		o.NonConverged.WithLabelValues("boundary").Inc()
	}
	if r.Failed {
		o.NonConverged.WithLabelValues("bubbles").Inc()
	}
	for _, n := range r.Newton {
		o.Newton.Observe(float64(n.It))
		if !n.Converged {
			o.NonConverged.WithLabelValues(n.Name).Inc()
		}
	}
}

// Save writes the metrics in the text exposition format to file fn
func (o *Metrics) Save(fn string) (err error) {
	if err = prometheus.WriteToTextfile(fn, o.Registry); err != nil {
		return chk.Err("cannot write metrics to %q: %v", fn, err)
	}
	return
}
