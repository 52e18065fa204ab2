// Package metrics counts what the CLI loads and infers, using a private
// Prometheus registry that can be dumped in the text exposition format.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/chartscale/scale"
)

const namespace = "chartscale"

// Recorder holds the collectors for one CLI run.
type Recorder struct {
	reg        *prometheus.Registry
	inferences *prometheus.CounterVec
	loads      *prometheus.CounterVec
	rows       prometheus.Histogram
	loadTime   prometheus.Histogram
}

// New registers a fresh set of collectors.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		inferences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inferences_total",
			Help:      "Fields classified, by inferred data type.",
		}, []string{"type"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Dataset loads, by outcome.",
		}, []string{"outcome"}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Records per loaded dataset.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}),
		loadTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent loading a dataset.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	r.reg.MustRegister(r.inferences, r.loads, r.rows, r.loadTime)
	return r
}

// ObserveInference counts one classified field.
func (r *Recorder) ObserveInference(t scale.DataType) {
	r.inferences.WithLabelValues(t.String()).Inc()
}

// ObserveLoad records a dataset load. err != nil counts as a failure and
// skips the size and latency histograms.
func (r *Recorder) ObserveLoad(rows int, elapsed time.Duration, err error) {
	if err != nil {
		r.loads.WithLabelValues("error").Inc()
		return
	}
	r.loads.WithLabelValues("ok").Inc()
	r.rows.Observe(float64(rows))
	r.loadTime.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry (e.g. for promhttp).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteText dumps every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
