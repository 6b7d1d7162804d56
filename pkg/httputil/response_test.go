package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_WritesStatusEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, http.StatusOK, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "abc", details["token"])
	_, hasError := body["error"]
	assert.False(t, hasError)
}

func TestFail_WritesErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusUnauthorized, "INVALID_USER")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "INVALID_USER", body["details"])
	_, hasStatus := body["status"]
	assert.False(t, hasStatus)
}

func TestFailFields_IncludesFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()
	FailFields(rec, http.StatusBadRequest, "VALIDATION_ERROR", map[string]string{
		"Password": "is required",
	})

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body["details"])
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "is required", fields["Password"])
}
