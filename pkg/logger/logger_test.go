package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/samandr77/microservices/crm/pkg/logger"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest
func TestHandler_AddsContextIDs(t *testing.T) {
	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "info")
	require.NoError(t, err)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user-1")

	l.With("component", "test").DebugContext(ctx, "hidden")
	l.With("component", "test").InfoContext(ctx, "visible")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "visible", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "user-1", record["user_id"])
	require.Equal(t, "test", record["component"])

	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}

//nolint:paralleltest
func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud")
	require.Error(t, err)
}
