// metrics — Prometheus-метрики HTTP-сервера и клиента апстрима.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "traffic_news"

// Metrics — набор коллекторов, зарегистрированных в одном Registerer.
type Metrics struct {
	// UpstreamRequests — запросы к ADAC по классу статуса ("2xx", "5xx", "error").
	UpstreamRequests *prometheus.CounterVec
	// UpstreamDuration — длительность round trip к ADAC.
	UpstreamDuration prometheus.Histogram
	// HTTPRequests — входящие запросы по маршруту, методу и статусу.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration — длительность обработки входящих запросов.
	HTTPDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в reg.
// Повторная регистрация в том же reg паникует (поведение promauto).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		UpstreamRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of GraphQL requests sent to ADAC",
			},
			[]string{"status"},
		),
		UpstreamDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of GraphQL round trips to ADAC in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of handled HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP request handling in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// ObserveRoundTrip учитывает один запрос к апстриму; status == 0 — ошибка транспорта.
func (m *Metrics) ObserveRoundTrip(status int, dur time.Duration) {
	m.UpstreamRequests.WithLabelValues(statusClass(status)).Inc()
	m.UpstreamDuration.Observe(dur.Seconds())
}

// ObserveHTTP учитывает один входящий запрос.
func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(dur.Seconds())
}

func statusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
