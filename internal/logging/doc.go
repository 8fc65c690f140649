// Package logging provides structured logging for algoviz.
//
// The terminal belongs to the UI while a run plays, so logs never go to the
// screen during interactive use. They are written as JSON lines to
// debug.log under the state directory and read back by the logs command.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (run id, algorithm, component)
//   - Size-based rotation with optional gzip compression of backups
//   - Reading, filtering and exporting logs as JSON, text or CSV
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* methods share the parent's writer.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(stateDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	runLog := logger.WithRun(runID).WithAlgorithm("dijkstra")
//	runLog.Info("run loaded", "steps", len(steps))
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"run loaded","run_id":"...","algorithm":"dijkstra","steps":41}
//
// # Log Rotation
//
//	logger, err := logging.NewLoggerWithRotation(stateDir, "DEBUG", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	})
//
// Rotated files are named debug.log.1, debug.log.2 and so on, .1 being the
// most recent.
//
// # Reading Logs
//
//	entries, err := logging.ReadLogs(stateDir)
//	errs := logging.FilterLogs(entries, logging.LogFilter{Level: "WARN", Algorithm: "prim"})
//	_ = logging.WriteLogEntries(os.Stdout, errs, "text")
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
