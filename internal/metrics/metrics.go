package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors the HTTP layer and jobs report to. Each
// instance owns its registry so tests can build servers side by side.
type Metrics struct {
	Registry *prometheus.Registry

	logins          *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sessionsSwept   prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyedge",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyedge",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "studyedge",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studyedge",
			Name:      "sessions_swept_total",
			Help:      "Expired session rows deleted by the sweep job.",
		}),
	}
	m.Registry.MustRegister(
		m.logins,
		m.requests,
		m.requestDuration,
		m.sessionsSwept,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) LoginSucceeded(created bool) {
	if created {
		m.logins.WithLabelValues("created").Inc()
		return
	}
	m.logins.WithLabelValues("existing").Inc()
}

func (m *Metrics) LoginFailed() {
	m.logins.WithLabelValues("failed").Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) SessionsSwept(n int64) {
	m.sessionsSwept.Add(float64(n))
}
