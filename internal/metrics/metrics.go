package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics provides observability for the doctors directory.
// Each instance owns its registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	DoctorsCreated     prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	DoctorListDuration prometheus.Histogram
	DoctorListResults  prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doctors_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doctors_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: durationBuckets,
		}, []string{"method", "route"}),
		DoctorsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "doctors_created_total",
			Help: "Total number of doctors created, single or bulk",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doctors_validation_failures_total",
			Help: "Total number of rejected create payloads by operation",
		}, []string{"operation"}),
		DoctorListDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doctors_list_duration_seconds",
			Help:    "Duration of filtered doctor listings",
			Buckets: durationBuckets,
		}),
		DoctorListResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doctors_list_results",
			Help:    "Number of doctors returned by a listing",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// AddDoctorsCreated records n persisted doctors.
func (m *Metrics) AddDoctorsCreated(n int) {
	m.DoctorsCreated.Add(float64(n))
}

// IncrementValidationFailure records a rejected create payload.
func (m *Metrics) IncrementValidationFailure(operation string) {
	m.ValidationFailures.WithLabelValues(operation).Inc()
}

// ObserveDoctorList records the duration and size of a listing.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDoctorList(start time.Time, results int) {
	m.DoctorListDuration.Observe(time.Since(start).Seconds())
	m.DoctorListResults.Observe(float64(results))
}
