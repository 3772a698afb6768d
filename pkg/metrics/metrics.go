package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles the prometheus collectors used by the site.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec
	Submissions        *prometheus.CounterVec
	RateLimitDropped   prometheus.Counter
}

// New creates the site metrics and registers them, with the Go and process
// collectors, on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "website_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leads_submissions_total",
			Help: "Lead form submissions forwarded to the form backend.",
		}, []string{"form", "action", "outcome"}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "website_ratelimit_dropped_total",
			Help: "Total number of submissions dropped by the rate limiter.",
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSec,
		m.Submissions,
		m.RateLimitDropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// NewNop returns metrics registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
