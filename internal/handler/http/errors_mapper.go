// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// statusFromFailure maps a failure kind to its HTTP status. The mapping is
// total and deterministic: same kind, same status, regardless of endpoint.
func statusFromFailure(failure *models.Failure) int {
	switch failure.Kind {
	case models.FailureValidation:
		return http.StatusBadRequest
	case models.FailureNotFound:
		return http.StatusNotFound
	case models.FailureUpstream:
		if errors.Is(failure, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeFailure classifies err and writes the shared error envelope. Internal
// causes are logged here and never serialized.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	failure := models.AsFailure(err)
	status := statusFromFailure(failure)

	log := logger.FromRequest(r)
	if failure.Kind == models.FailureInternal {
		log.Error().Err(err).Msg("internal fault")
	} else {
		log.Warn().Str("kind", string(failure.Kind)).Int("status", status).Msg(failure.Message)
	}

	if _, writeErr := utils.WriteJSON(w, failure.Response(), status); writeErr != nil {
		log.Error().Err(writeErr).Msg("cannot write error response")
	}
}
