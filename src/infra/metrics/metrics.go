// Package metrics owns the Prometheus collectors of the service.
//
// Collectors live on a private registry so several instances (one per test,
// for example) never clash on the global default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"textconv/src/core/domain"
	"textconv/src/core/ports"
)

const namespace = "textconv"

// Metrics holds the HTTP and conversion collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.SummaryVec

	conversions  *prometheus.CounterVec
	inputRunes   prometheus.Histogram
	morseDropped prometheus.Counter
}

var _ ports.ConversionRecorder = (*Metrics)(nil)

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		responseSize: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace:  namespace,
				Subsystem:  "http",
				Name:       "response_size_bytes",
				Help:       "HTTP response size in bytes",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"method", "route"},
		),

		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversions_total",
				Help:      "Conversions by result (ok, empty_input, invalid)",
			},
			[]string{"result"},
		),
		inputRunes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_input_runes",
			Help:      "Number of characters per converted input",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		morseDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "morse_dropped_runes_total",
			Help:      "Characters skipped because the Morse table has no symbol for them",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// knownMethods are the HTTP methods kept as label values. Anything else is
// recorded as otherMethod.
var knownMethods = map[string]struct{}{
	http.MethodGet: {}, http.MethodHead: {}, http.MethodPost: {},
	http.MethodPut: {}, http.MethodPatch: {}, http.MethodDelete: {},
	http.MethodConnect: {}, http.MethodOptions: {}, http.MethodTrace: {},
}

const otherMethod = "OTHER"

func methodLabel(method string) string {
	if _, ok := knownMethods[method]; ok {
		return method
	}
	return otherMethod
}

// ObserveHTTP records one finished request. route should be the matched
// route pattern, not the raw path, to keep label cardinality bounded.
// Methods outside the standard set share the OTHER label.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration, respSize int) {
	method = methodLabel(method)
	m.requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	if respSize > 0 {
		m.responseSize.WithLabelValues(method, route).Observe(float64(respSize))
	}
}

// ConversionSucceeded implements ports.ConversionRecorder.
func (m *Metrics) ConversionSucceeded(c *domain.Conversion) {
	m.conversions.WithLabelValues("ok").Inc()
	m.inputRunes.Observe(float64(c.Runes()))
	if c.Dropped > 0 {
		m.morseDropped.Add(float64(c.Dropped))
	}
}

// ConversionRejected implements ports.ConversionRecorder.
func (m *Metrics) ConversionRejected(err error) {
	result := "invalid"
	if domain.IsEmptyInput(err) {
		result = "empty_input"
	}
	m.conversions.WithLabelValues(result).Inc()
}
