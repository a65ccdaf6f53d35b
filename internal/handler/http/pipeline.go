// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/service"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// maxUploadBytes caps multipart uploads; stock snapshots are small CSVs.
const maxUploadBytes = 32 << 20

func (h *Handler) runPipeline(w http.ResponseWriter, r *http.Request) {
	req, err := h.pipelineRequestFromMultipart(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	resp, err := h.services.PipelineService.Run(r.Context(), req, nil)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) runPipelineJSON(w http.ResponseWriter, r *http.Request) {
	req, err := h.pipelineRequestFromJSON(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	resp, err := h.services.PipelineService.Run(r.Context(), req, nil)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) groupOnly(w http.ResponseWriter, r *http.Request) {
	req, err := h.pipelineRequestFromJSON(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	resp, err := h.services.PipelineService.GroupOnly(r.Context(), req)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}

// runPipelineStream runs the pipeline in a worker goroutine and streams
// progress steps as Server-Sent Events. Client disconnect cancels the request
// context; the pipeline observes it between phases.
func (h *Handler) runPipelineStream(w http.ResponseWriter, r *http.Request) {
	req, err := h.pipelineRequestFromMultipart(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeFailure(w, r, models.NewInternalFailure(ErrStreamingUnsupported))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	events := make(chan models.ProgressEvent, 16)
	runErr := make(chan error, 1)

	var progress service.ProgressFunc = func(event models.ProgressEvent) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(events)
		_, err := h.services.PipelineService.Run(ctx, req, progress)
		runErr <- err
	}()

	log := logger.FromRequest(r)
	for event := range events {
		if err := writeSSEEvent(w, event); err != nil {
			log.Warn().Err(err).Msg("client stopped reading event stream")
		}
		flusher.Flush()
	}

	if err := <-runErr; err != nil {
		failure := models.AsFailure(err)
		errorEvent := models.ProgressEvent{
			Step:   models.StepError,
			Detail: map[string]any{"failure": failure.Response()},
		}
		if writeErr := writeSSEEvent(w, errorEvent); writeErr != nil {
			log.Warn().Err(writeErr).Msg("cannot write error event")
		}
		flusher.Flush()
	}
}

// writeSSEEvent serializes one progress event in SSE framing, using the step
// as the event name.
func writeSSEEvent(w io.Writer, event models.ProgressEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling progress event: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Step, data)
	return err
}

// pipelineRequestFromMultipart extracts the uploaded CSV from the "file"
// form field and validates the resulting request.
func (h *Handler) pipelineRequestFromMultipart(r *http.Request) (models.RunPipelineRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return models.RunPipelineRequest{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "file",
			Reason:  models.ReasonWrongType,
			Message: "request body is not a valid multipart form",
		})
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return models.RunPipelineRequest{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "file",
			Reason:  models.ReasonMissing,
			Message: `form field "file" is required`,
		})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RunPipelineRequest{}, models.NewInternalFailure(err)
	}

	req := models.RunPipelineRequest{
		CSVContent:  string(content),
		CSVFilename: header.Filename,
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		return models.RunPipelineRequest{}, err
	}

	return req, nil
}

// pipelineRequestFromJSON decodes and validates the JSON-body variant.
func (h *Handler) pipelineRequestFromJSON(r *http.Request) (models.RunPipelineRequest, error) {
	var req models.RunPipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.RunPipelineRequest{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "body",
			Reason:  models.ReasonWrongType,
			Message: "request body is not valid JSON",
		})
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		return models.RunPipelineRequest{}, err
	}

	return req, nil
}

// writeJSON validates and writes a success response. A response that fails
// its own schema is a programming error and is reported as an internal
// fault, never serialized as-is. Write errors are logged, not masked.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if err := h.validator.Validate(r.Context(), data); err != nil {
		writeFailure(w, r, models.NewInternalFailure(err))
		return
	}

	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("cannot write response")
	}
}
