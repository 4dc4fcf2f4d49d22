// Package logging provides a minimal logging facade for the ML-KEM surface.
//
// The Logger interface wraps the subset of log/slog used by the mlkem
// package so that applications can supply their own implementation for
// testing or redaction policies:
//
//	logger := logging.New(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//	k, _ := mlkem.New(mlkem.MLKEM768, mlkem.Config{Logger: logger})
//
// Key material, seeds and shared secrets are never logged. Use Redacted to
// record that a sensitive value was produced without including it:
//
//	logger.Debug(ctx, "encapsulated", logging.Redacted("shared_secret"))
//	// shared_secret="[redacted]"
//
// Discard returns a Logger that drops everything, which is what the mlkem
// package uses when no logger is configured.
package logging
