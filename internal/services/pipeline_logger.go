package services

import (
	"context"
	"log/slog"
	"time"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the id used to correlate pipeline logs
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type PipelineLogger struct {
	logger *slog.Logger
}

func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineLogger{
		logger: logger,
	}
}

func (pl *PipelineLogger) LogSourceLoadStarted(ctx context.Context, kind string) {
	pl.logger.InfoContext(ctx, "source load started",
		slog.String("event_type", "source_load_started"),
		slog.String("source_kind", kind),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogSourceLoadCompleted(ctx context.Context, kind string, clients, products, investments int, durationMs int64) {
	pl.logger.InfoContext(ctx, "source load completed",
		slog.String("event_type", "source_load_completed"),
		slog.String("source_kind", kind),
		slog.Int("clients", clients),
		slog.Int("products", products),
		slog.Int("investments", investments),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogSourceLoadFailed(ctx context.Context, kind string, errorMsg string, durationMs int64) {
	pl.logger.ErrorContext(ctx, "source load failed",
		slog.String("event_type", "source_load_failed"),
		slog.String("source_kind", kind),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogReportGenerated(ctx context.Context, reportID string, investments, months, products, clients int, durationMs int64) {
	pl.logger.InfoContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("report_id", reportID),
		slog.Int("investments", investments),
		slog.Int("months", months),
		slog.Int("products", products),
		slog.Int("clients", clients),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogReportFailed(ctx context.Context, errorMsg string, durationMs int64) {
	pl.logger.WarnContext(ctx, "report generation failed",
		slog.String("event_type", "report_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	pl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the id attached with WithCorrelationID, or ""
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
