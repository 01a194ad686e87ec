// Package middleware provides stock handler.Middleware implementations for
// the dispatch pipeline.
//
// Middlewares are registered in a container under the ids used by the
// middleware spec; their position in the chain always comes from the spec:
//
//	spec := action.MustSpec(
//		action.Entry{ID: "recover", Enabled: true},
//		action.Entry{ID: "requestID", Enabled: true},
//		action.Entry{ID: "logging", Enabled: true},
//		action.Entry{ID: "metrics", Enabled: false},
//	)
//
//	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
//
//	c := container.New().
//		Set("recover", middleware.Recover()).
//		Set("requestID", middleware.RequestID()).
//		Set("logging", middleware.LoggingWithLogger(log)).
//		Set("metrics", metrics.Middleware())
//
// # Request ID
//
// RequestID stores an identifier in the request context and echoes it in the
// X-Request-ID response header. GetRequestID reads it back:
//
//	id, ok := middleware.GetRequestID(r.Context())
//
// # Logging
//
// Logging writes one record when the request enters and one when the
// response has been rendered, with status and duration. 5xx responses and
// errors are logged at error level, 4xx and slow requests at warn.
//
// # Recover
//
// Recover turns panics from inner layers into errors implementing
// PanicError, so the application error handler can respond.
//
// # Metrics
//
// Metrics counts rendered responses by method and status and observes
// durations by method. Handler serves the Prometheus endpoint.
package middleware
