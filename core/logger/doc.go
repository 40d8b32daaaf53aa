// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects Zap's development configuration, every other level
// its production configuration. The console format colours level names and
// drops stack traces; json is meant for log collectors. Entries go to stderr
// by default so that command output on stdout stays clean; Output redirects
// them to stdout or a file.
//
// # Context Awareness
//
// HTTP handlers run one merge session per request. WithRayID attaches the
// request's ray id (set by the rayid middleware) to a logger so that all
// entries of a session can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparing lookup tables")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Merge failed", zap.Error(err))
package logger
