package mcp

import (
	"context"
	"log/slog"
)

// LogToolRequest logs an incoming tool call with structured fields.
func LogToolRequest(ctx context.Context, logger *slog.Logger, tool string, correlationID string) {
	logger.InfoContext(ctx, "tool_request",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", correlationID,
	)
}

// LogToolSuccess logs a completed tool call with latency.
func LogToolSuccess(ctx context.Context, logger *slog.Logger, tool string, correlationID string, latencyMS int64) {
	logger.InfoContext(ctx, "tool_success",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", correlationID,
		"latency_ms", latencyMS,
	)
}

// LogToolError logs a tool call that resolved to an error envelope.
func LogToolError(ctx context.Context, logger *slog.Logger, tool string, correlationID string, kind string, latencyMS int64) {
	logger.WarnContext(ctx, "tool_error",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", correlationID,
		"error_kind", kind,
		"latency_ms", latencyMS,
	)
}
