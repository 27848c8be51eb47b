package http

import (
	"context"
	"log/slog"
)

const serviceName = "auth-service"

// httpLogger tags records so adapter output is filterable next to the
// application layer's lines.
func httpLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "http",
		"layer", "adapter",
	)
}

// logHTTPOperationError records a failed operation exactly once, at warn for
// client-caused statuses and error for server faults.
func logHTTPOperationError(ctx context.Context, operation string, statusCode int, code, message string, err error) {
	logger := httpLogger().With(
		"operation", operation,
		"outcome", "failure",
		"status_code", statusCode,
		"error_code", code,
		"message", message,
		"request_id", requestIDFromContext(ctx),
	)
	if err != nil {
		logger = logger.With("error", err.Error())
	}
	if statusCode >= 500 {
		logger.ErrorContext(ctx, "http operation failed")
		return
	}
	logger.WarnContext(ctx, "http operation failed")
}
