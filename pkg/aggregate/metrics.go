package aggregate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeStatus    = "status"
	OutcomeShape     = "shape"
)

// Metrics records listing outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	listings *prometheus.CounterVec
	duration prometheus.Histogram
	records  *prometheus.GaugeVec
}

// NewMetrics registers the aggregator collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		listings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "auditscope",
			Name:      "remote_listing_total",
			Help:      "Remote listing requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "auditscope",
			Name:      "remote_listing_duration_seconds",
			Help:      "Time until the remote listing request settled.",
			Buckets:   prometheus.DefBuckets,
		}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "auditscope",
			Name:      "catalog_records",
			Help:      "Records in the last merged catalog by source.",
		}, []string{"source"}),
	}
	reg.MustRegister(m.listings, m.duration, m.records)
	return m
}

func (m *Metrics) observeListing(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.listings.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) observeRecords(curated, remote int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues("curated").Set(float64(curated))
	m.records.WithLabelValues("remote").Set(float64(remote))
}
