package http

import (
	"net/http"

	"github.com/procurio/purchasing-automation/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.HealthResponse{
		Status:             "ok",
		UpstreamConfigured: h.llm.Configured(),
	}, http.StatusOK)
}
