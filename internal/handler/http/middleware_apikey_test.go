package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey_NoTokenConfiguredDisablesAuth(t *testing.T) {
	router := newTestRouter(t, defaultTestServices(), config.App{})

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := doRequest(router, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKey_MissingKeyIsRejected(t *testing.T) {
	router := newTestRouter(t, defaultTestServices(), config.App{AccessToken: "secret-token"})

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := doRequest(router, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.FailureValidation, resp.Kind)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, apiKeyHeader, resp.Details[0].Field)
	assert.Equal(t, models.ReasonPatternMismatch, resp.Details[0].Reason)
	assert.False(t, resp.Retryable)
}

func TestAPIKey_WrongKeyIsRejected(t *testing.T) {
	router := newTestRouter(t, defaultTestServices(), config.App{AccessToken: "secret-token"})

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	r.Header.Set(apiKeyHeader, "not-the-token")
	w := doRequest(router, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKey_CorrectKeyPasses(t *testing.T) {
	router := newTestRouter(t, defaultTestServices(), config.App{AccessToken: "secret-token"})

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	r.Header.Set(apiKeyHeader, "secret-token")
	w := doRequest(router, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.0.0", w.Body.String())
}
