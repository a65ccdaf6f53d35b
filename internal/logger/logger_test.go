// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("purchasing-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("startup")

	entry := logEntry(t, &buf)
	assert.Equal(t, "purchasing-server", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime)
}

func TestNewLogger_CallerFieldIsFunctionName(t *testing.T) {
	NewLogger("purchasing-server")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFieldsWithoutSharingContext(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("purchasing-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&buf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "trace-42")
	})

	child.Info().Msg("dispatch")
	entry := logEntry(t, &buf)
	assert.Equal(t, "purchasing-server", entry["role"])
	assert.Equal(t, "trace-42", entry["trace_id"])

	// The parent must not pick up the child's trace id.
	buf.Reset()
	parent.Info().Msg("parent")
	entry = logEntry(t, &buf)
	_, hasTraceID := entry["trace_id"]
	assert.False(t, hasTraceID)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := logEntry(t, &buf)
	assert.Equal(t, "trace-42", entry["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()

	r := httptest.NewRequest(http.MethodGet, "/api/output/list", nil)
	r = r.WithContext(zl.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	entry := logEntry(t, &buf)
	assert.Equal(t, "trace-42", entry["trace_id"])
}

func TestFromRequest_NeverNil(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	require.NotNil(t, FromRequest(r))
}
