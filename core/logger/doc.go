// Package logger builds the zap logger used across the service.
//
// Level "debug" selects zap's development config, anything else the production
// config at that level. Encoding picks json or console output.
//
// Request and session scoped loggers:
//
//	l := logger.WithRayID(log, c)          // ray id set by the rayid middleware
//	l = logger.WithSession(l, sess.ID)     // UI session owning the component
//	l.Debug("Rebuilt", zap.Int("size", n))
package logger
