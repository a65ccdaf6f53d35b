package http

import (
	"crypto/hmac"
	"net/http"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

const apiKeyHeader = "X-API-Key"

// withAPIKey enforces the shared-secret access token on protected routes.
// When no token is configured, authentication is disabled entirely.
// Comparison runs over HMAC digests so it is constant-time and does not leak
// the token length.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.appConfig.AccessToken
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		presented := r.Header.Get(apiKeyHeader)
		want := utils.HashString(token, token)
		got := utils.HashString(presented, token)

		if !hmac.Equal([]byte(got), []byte(want)) {
			logger.FromRequest(r).Warn().Msg("rejected request with invalid api key")
			failure := models.NewValidationFailure(models.FieldViolation{
				Field:   apiKeyHeader,
				Reason:  models.ReasonPatternMismatch,
				Message: "invalid or missing API key",
			})
			if _, err := utils.WriteJSON(w, failure.Response(), http.StatusUnauthorized); err != nil {
				logger.FromRequest(r).Error().Err(err).Msg("cannot write auth error response")
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
