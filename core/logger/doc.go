// Package logger provides slog construction and attribute helpers.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//	)
//
//	log.Info("dispatching",
//		logger.Controller("Admin.DashboardController"),
//		logger.EntryPoint("inviteUser"),
//	)
//
// Loggers can also be created from environment configuration:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg) // LOG_LEVEL, LOG_FORMAT
//	log, err := logger.NewFromConfig(cfg)
//
// # Attribute Helpers
//
// Helpers that take optional values return an empty slog.Attr for nil errors
// and empty strings, which slog drops from the output:
//
//	log.Error("request failed", logger.Error(err), logger.RequestID(id))
package logger
