// Package metrics provides Prometheus metrics collection for necklace generation.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "pearl"

var (
	// PearlsGeneratedTotal tracks generated pearls by shape and source.
	PearlsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pearls_generated_total",
			Help:      "Total number of randomly generated pearls",
		},
		[]string{"shape", "source"},
	)

	// NecklacesBuiltTotal tracks built necklaces.
	NecklacesBuiltTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "necklaces_built_total",
			Help:      "Total number of necklaces built",
		},
	)

	// NecklaceBuildDuration tracks how long building a necklace takes.
	NecklaceBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "necklace_build_duration_seconds",
			Help:      "Necklace build duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)

	// NecklaceValueKr holds the most recently computed necklace value.
	NecklaceValueKr = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "necklace_value_kr",
			Help:      "Last computed total necklace price in kr",
		},
	)

	// NecklaceSearchesTotal tracks pearl searches by result.
	NecklaceSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "necklace_searches_total",
			Help:      "Total number of pearl searches",
		},
		[]string{"result"},
	)
)

// RecordPearlGenerated records a generated pearl.
func RecordPearlGenerated(shape, source string) {
	PearlsGeneratedTotal.WithLabelValues(shape, source).Inc()
}

// RecordNecklaceBuilt records a built necklace and its build duration.
func RecordNecklaceBuilt(duration time.Duration) {
	NecklaceBuildDuration.Observe(duration.Seconds())
	NecklacesBuiltTotal.Inc()
}

// RecordNecklaceValue stores the latest necklace value.
func RecordNecklaceValue(kr int) {
	NecklaceValueKr.Set(float64(kr))
}

// RecordSearch records a search outcome ("found" or "not_found").
func RecordSearch(found bool) {
	result := "not_found"
	if found {
		result = "found"
	}
	NecklaceSearchesTotal.WithLabelValues(result).Inc()
}

// Summary gathers this package's metrics from the default registry and
// returns one value per metric family. Counters and gauges are summed over
// their label sets; histograms report their sample count.
func Summary() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}

	summary := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, Namespace+"_") {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		summary[name] = total
	}
	return summary, nil
}
