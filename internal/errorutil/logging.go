package errorutil

import (
	"fmt"
	"log/slog"
	"time"
)

// LogAndWrap logs err at error level with attrs and returns it wrapped with
// the operation name
func LogAndWrap(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if logger != nil {
		logger.Error(operation+" failed", withError(err, attrs)...)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// LogWarning logs a recoverable error without returning it
func LogWarning(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	if logger == nil || err == nil {
		return
	}
	logger.Warn("Non-fatal error in "+operation, withError(err, attrs)...)
}

// ExecuteWithLogging runs fn between debug start/completion records carrying
// its duration. A failure is logged and wrapped with the operation name.
func ExecuteWithLogging(logger *slog.Logger, operation string, fn func() error, attrs ...slog.Attr) error {
	if logger == nil {
		return fn()
	}

	start := time.Now()
	logger.Debug("Starting "+operation, toAny(attrs)...)

	err := fn()
	done := append(attrs[:len(attrs):len(attrs)], slog.Duration("duration", time.Since(start)))

	if err != nil {
		logger.Error("Failed "+operation, withError(err, done)...)
		return fmt.Errorf("%s: %w", operation, err)
	}

	logger.Debug("Completed "+operation, toAny(done)...)
	return nil
}

func withError(err error, attrs []slog.Attr) []any {
	return append([]any{slog.String("error", err.Error())}, toAny(attrs)...)
}

func toAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, attr := range attrs {
		out[i] = attr
	}
	return out
}

// InputContext tags a record with the value being parsed and, when set, its
// template
func InputContext(input, template string) []slog.Attr {
	attrs := []slog.Attr{slog.String("input", input)}
	if template != "" {
		attrs = append(attrs, slog.String("template", template))
	}
	return attrs
}

func ConfigContext(configFile string) []slog.Attr {
	if configFile == "" {
		return nil
	}
	return []slog.Attr{slog.String("config_file", configFile)}
}

func FileContext(filePath string) []slog.Attr {
	if filePath == "" {
		return nil
	}
	return []slog.Attr{slog.String("file_path", filePath)}
}
