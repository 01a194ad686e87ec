package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Metrics holds dispatch Prometheus metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec
}

// NewMetrics creates and registers dispatch metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_requests_total",
				Help: "Total number of rendered responses.",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "dispatch_request_duration_seconds",
				Help: "Time from entering the middleware to the end of rendering.",
				// Buckets: 5ms, 10ms, 25ms, 50ms, 100ms, 250ms, 500ms, 1s, 2.5s, 5s, 10s
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_errors_total",
				Help: "Total number of errors returned by inner layers or rendering.",
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ErrorsTotal,
	)

	return m
}

// Middleware returns the instrumentation middleware.
func (m *Metrics) Middleware() handler.Middleware {
	return handler.MiddlewareFunc(func(req *http.Request, next handler.Handler) (handler.Response, error) {
		start := time.Now()
		method := req.Method

		response, err := next.Handle(req)
		if err != nil {
			m.ErrorsTotal.WithLabelValues(method).Inc()
			m.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			return nil, err
		}
		if response == nil {
			return nil, nil
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			ww := handler.NewResponseWriter(w)
			err := response(ww, r)

			if err != nil {
				m.ErrorsTotal.WithLabelValues(method).Inc()
			}
			status := ww.Status()
			if status == 0 && err == nil {
				status = http.StatusOK
			}
			// failed renders that wrote nothing only count in ErrorsTotal
			if status != 0 {
				m.RequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
			}
			m.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			return err
		}, nil
	})
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HandlerFor returns a /metrics handler serving the given gatherer.
func HandlerFor(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
