package apiclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times outgoing API calls. A nil *Metrics records nothing.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg when non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devis",
			Subsystem: "apiclient",
			Name:      "requests_total",
			Help:      "Remote API calls by method, route and status code (0 when no response).",
		}, []string{"method", "route", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "devis",
			Subsystem: "apiclient",
			Name:      "request_duration_seconds",
			Help:      "Remote API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration)
	}
	return m
}

func (m *Metrics) observe(method, path string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	route := Route(path)
	m.Requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.Duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Route replaces numeric path segments with {id} so label values stay bounded.
func Route(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
