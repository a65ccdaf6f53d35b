// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"io"
	"net/http"

	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// ingest accepts plain-text/markdown reference documents in the "files"
// multipart field and stores them in the given collection.
func (h *Handler) ingest(collection models.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeFailure(w, r, models.NewValidationFailure(models.FieldViolation{
				Field:   "files",
				Reason:  models.ReasonWrongType,
				Message: "request body is not a valid multipart form",
			}))
			return
		}

		headers := r.MultipartForm.File["files"]
		files := make([]models.IngestFile, 0, len(headers))
		for _, header := range headers {
			part, err := header.Open()
			if err != nil {
				writeFailure(w, r, models.NewInternalFailure(err))
				return
			}

			content, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				writeFailure(w, r, models.NewInternalFailure(err))
				return
			}

			files = append(files, models.IngestFile{Name: header.Filename, Content: content})
		}

		resp, err := h.services.IngestService.Ingest(r.Context(), collection, files)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		h.writeJSON(w, r, resp, http.StatusOK)
	}
}

// ingestZip accepts one ZIP archive in the "file" field, extracts its text
// documents, and stores them in the given collection.
func (h *Handler) ingestZip(collection models.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeFailure(w, r, models.NewValidationFailure(models.FieldViolation{
				Field:   "file",
				Reason:  models.ReasonWrongType,
				Message: "request body is not a valid multipart form",
			}))
			return
		}

		part, _, err := r.FormFile("file")
		if err != nil {
			writeFailure(w, r, models.NewValidationFailure(models.FieldViolation{
				Field:   "file",
				Reason:  models.ReasonMissing,
				Message: `form field "file" is required`,
			}))
			return
		}
		defer part.Close()

		archive, err := io.ReadAll(part)
		if err != nil {
			writeFailure(w, r, models.NewInternalFailure(err))
			return
		}

		extracted, err := utils.ExtractTextFilesFromZip(archive)
		if err != nil {
			writeFailure(w, r, models.NewValidationFailure(models.FieldViolation{
				Field:   "file",
				Reason:  models.ReasonWrongType,
				Message: "uploaded file is not a readable ZIP archive",
			}))
			return
		}

		files := make([]models.IngestFile, 0, len(extracted))
		for _, f := range extracted {
			files = append(files, models.IngestFile{Name: f.Name, Content: f.Content})
		}

		resp, err := h.services.IngestService.Ingest(r.Context(), collection, files)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		h.writeJSON(w, r, resp, http.StatusOK)
	}
}
