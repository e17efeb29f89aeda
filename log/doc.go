// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats applied at logger creation time using functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger is also provided and can be reconfigured
// with [Config]. The zero value of [Logger] discards all messages, which
// lets library code accept an optional logger without nil checks.
package log
