// Package metrics exposes network construction progress as Prometheus metrics.
// A Collector is an nn.Observer; pass it to nn.Build with nn.WithObserver.
package metrics

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

const (
	ComplexityLabel = "complexity"

	namespace = "gmdh"
)

// Collector records layer events into its own registry.
type Collector struct {
	registry *prometheus.Registry

	layersBuilt    *prometheus.CounterVec
	units          *prometheus.CounterVec
	pairsScored    *prometheus.CounterVec
	zeroErrorUnits *prometheus.CounterVec
	layerDuration  prometheus.Histogram
	earlyStops     prometheus.Counter
	minError       *prometheus.GaugeVec
}

// NewCollector returns a Collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		layersBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layers_built_total",
				Help:      "Number of layers built, by complexity",
			},
			[]string{ComplexityLabel},
		),

		units: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "units_total",
				Help:      "Number of derived units added to the store, by complexity",
			},
			[]string{ComplexityLabel},
		),

		pairsScored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pairs_scored_total",
				Help:      "Number of unit pairs scored against the function catalog, by complexity",
			},
			[]string{ComplexityLabel},
		),

		zeroErrorUnits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "zero_error_units_total",
				Help:      "Number of derived units that match the target on every sample, by complexity",
			},
			[]string{ComplexityLabel},
		),

		layerDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "layer_duration_seconds",
				Help:      "Time spent building and merging one layer",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),

		earlyStops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "early_stops_total",
				Help:      "Number of builds that stopped at a zero-error layer",
			},
		),

		minError: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "layer_min_error",
				Help:      "Minimum Hamming error of the last layer built at each complexity, -1 when empty",
			},
			[]string{ComplexityLabel},
		),
	}

	c.registry.MustRegister(
		c.layersBuilt,
		c.units,
		c.pairsScored,
		c.zeroErrorUnits,
		c.layerDuration,
		c.earlyStops,
		c.minError,
	)
	return c
}

// OnLayer implements nn.Observer.
func (c *Collector) OnLayer(event nn.LayerEvent) {
	complexity := strconv.Itoa(event.Complexity)
	c.layersBuilt.WithLabelValues(complexity).Inc()
	c.units.WithLabelValues(complexity).Add(float64(event.Units))
	c.pairsScored.WithLabelValues(complexity).Add(float64(event.Pairs))
	c.zeroErrorUnits.WithLabelValues(complexity).Add(float64(event.ZeroError))
	c.layerDuration.Observe(event.Elapsed.Seconds())
	c.minError.WithLabelValues(complexity).Set(float64(event.MinError))
	if event.EarlyStop {
		c.earlyStops.Inc()
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Gather returns the current metric families.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}

// WriteText writes all metrics to w in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "writing %s", mf.GetName())
		}
	}
	return nil
}
