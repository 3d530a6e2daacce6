package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service", nil)

	RespondWithJSON(recorder, req, http.StatusOK, map[string]string{"status": StatusSuccess})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, StatusSuccess, body["status"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service/abc", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusBadRequest, "Invalid service ID")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, StatusError, body.Status)
	assert.Equal(t, "Invalid service ID", body.Message)
	assert.NotEmpty(t, body.TraceID)
}

func TestRespondWithErrorAndLogNeverLeaksRawError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service", nil)

	raw := errors.New("dial tcp: postgres://admin:hunter2@db:5432 refused")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to list services", raw)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "hunter2")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Failed to list services", body.Message)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = SetTraceID(ctx)
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// Two contexts never share a trace ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}
