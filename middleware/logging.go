package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request/response logging middleware with default configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{
		Logger: log,
	})
}

// LoggingWithConfig creates a request/response logging middleware.
// The request is logged when it enters the middleware. The response is
// logged once it has been rendered, with its status and duration; errors
// returned by inner layers are logged before being passed on unchanged.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return handler.MiddlewareFunc(func(req *http.Request, next handler.Handler) (handler.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return next.Handle(req)
		}

		start := time.Now()
		requestID, _ := GetRequestID(req.Context())

		cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "HTTP request started",
			logger.Component(cfg.Component),
			logger.Event("request"),
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
			logger.RemoteAddr(req.RemoteAddr),
			logger.RequestID(requestID),
		)

		response, err := next.Handle(req)
		if err != nil {
			cfg.Logger.LogAttrs(req.Context(), slog.LevelError, "HTTP request failed",
				logger.Component(cfg.Component),
				logger.Event("error"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.RequestID(requestID),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return nil, err
		}
		if response == nil {
			return nil, nil
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			ww := handler.NewResponseWriter(w)
			err := response(ww, r)

			status := ww.Status()
			if status == 0 {
				// Nothing written yet: the error handler will answer 500.
				status = http.StatusOK
				if err != nil {
					status = http.StatusInternalServerError
				}
			}
			duration := time.Since(start)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("response"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.StatusCode(status),
				logger.Duration(duration),
				logger.RequestID(requestID),
			}

			level := cfg.LogLevel
			switch {
			case err != nil || status >= 500:
				level = slog.LevelError
				attrs = append(attrs, logger.Error(err))
			case status >= 400:
				level = slog.LevelWarn
			case duration > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}

			cfg.Logger.LogAttrs(r.Context(), level, "HTTP request completed", attrs...)
			return err
		}, nil
	})
}
