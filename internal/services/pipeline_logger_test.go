package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedPipelineLogger() (PipelineLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewPipelineLogger(logger), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestPipelineLogger_SourceLoadCompleted(t *testing.T) {
	logger, buf := newBufferedPipelineLogger()
	ctx := WithCorrelationID(context.Background(), "trace-123")

	logger.LogSourceLoadCompleted(ctx, "csv", 2, 3, 10, 15)

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "source load completed", entry["msg"])
	assert.Equal(t, "source_load_completed", entry["event_type"])
	assert.Equal(t, "csv", entry["source_kind"])
	assert.Equal(t, float64(10), entry["investments"])
	assert.Equal(t, "trace-123", entry["correlation_id"])
}

func TestPipelineLogger_FailuresLogAboveInfo(t *testing.T) {
	logger, buf := newBufferedPipelineLogger()

	logger.LogSourceLoadFailed(context.Background(), "database", "connection refused", 5)
	entry := decodeLogLine(t, buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
	assert.Equal(t, "", entry["correlation_id"])

	buf.Reset()
	logger.LogReportFailed(context.Background(), "missing key", 1)
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "report_failed", entry["event_type"])
}

func TestPipelineLogger_CircuitBreakerStateChange(t *testing.T) {
	logger, buf := newBufferedPipelineLogger()

	logger.LogCircuitBreakerStateChange(context.Background(), "source", StateClosed.String(), StateOpen.String())

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "closed", entry["old_state"])
	assert.Equal(t, "open", entry["new_state"])
}
