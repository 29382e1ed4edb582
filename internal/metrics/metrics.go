package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
	OrderActions  *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heavenly",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "heavenly",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heavenly",
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	})
	orderActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heavenly",
		Subsystem: service,
		Name:      "order_actions_total",
		Help:      "Total number of admin order transitions.",
	}, []string{"action"})

	prometheus.MustRegister(requests, latency, ordersCreated, orderActions)
	return &ServerMetrics{
		Requests:      requests,
		LatencyMS:     latency,
		OrdersCreated: ordersCreated,
		OrderActions:  orderActions,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
