package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) outputList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.OutputService.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) outputDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")

	doc, err := h.services.OutputService.Download(r.Context(), filename)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Write([]byte(doc.Content))
}
