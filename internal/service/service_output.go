// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
	"github.com/procurio/purchasing-automation/models"
)

// safeFilenamePattern accepts only filenames the pipeline itself produces.
// Checked before touching storage, so path-style input never reaches a query.
var safeFilenamePattern = regexp.MustCompile(`^(analysis_|pr_|email_draft_)[A-Za-z0-9._-]+\.md$`)

// outputService serves listing and download of generated documents.
type outputService struct {
	documents store.DocumentRepository
	retention time.Duration
	logger    *logger.Logger
}

// NewOutputService constructs an [OutputService]. retention is echoed in the
// listing so clients know how long downloads remain available; zero disables
// the hint.
func NewOutputService(documents store.DocumentRepository, retention time.Duration, logger *logger.Logger) OutputService {
	return &outputService{documents: documents, retention: retention, logger: logger}
}

// List implements [OutputService].
func (s *outputService) List(ctx context.Context) (models.OutputListResponse, error) {
	files, err := s.documents.List(ctx)
	if err != nil {
		return models.OutputListResponse{}, models.NewInternalFailure(err)
	}

	response := models.OutputListResponse{Files: files}
	if s.retention > 0 {
		response.RetentionMaxAge = s.retention.String()
	}
	return response, nil
}

// Download implements [OutputService].
func (s *outputService) Download(ctx context.Context, filename string) (models.Document, error) {
	if !safeFilenamePattern.MatchString(filename) {
		return models.Document{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "filename",
			Reason:  models.ReasonPatternMismatch,
			Message: ErrUnsafeFilename.Error(),
		})
	}

	doc, err := s.documents.FindByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.Document{}, models.NewNotFoundFailure("document not found: " + filename)
		}
		return models.Document{}, models.NewInternalFailure(err)
	}

	return doc, nil
}
