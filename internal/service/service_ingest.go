// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

var (
	supplierNamePattern = regexp.MustCompile(`(?im)^Supplier\s*:\s*(.+)$`)
	itemCodePattern     = regexp.MustCompile(`(?i)ItemCode\s*[:\-]?\s*(\d+)`)
)

// ingestService stores reference documents the agents later retrieve.
// Each file in a batch is processed independently.
type ingestService struct {
	history store.HistoryRepository
	logger  *logger.Logger
}

// NewIngestService constructs an [IngestService] on top of the history
// repository.
func NewIngestService(history store.HistoryRepository, logger *logger.Logger) IngestService {
	return &ingestService{history: history, logger: logger}
}

// Ingest implements [IngestService].
func (s *ingestService) Ingest(ctx context.Context, collection models.Collection, files []models.IngestFile) (models.IngestResponse, error) {
	if !collection.Valid() {
		return models.IngestResponse{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "collection",
			Reason:  models.ReasonOutOfRange,
			Message: "unknown collection: " + string(collection),
		})
	}
	if len(files) == 0 {
		return models.IngestResponse{}, models.NewValidationFailure(models.FieldViolation{
			Field:   "files",
			Reason:  models.ReasonEmptyValue,
			Message: "no files provided",
		})
	}

	response := models.IngestResponse{
		OK:      true,
		Store:   collection,
		Results: make([]models.IngestFileResult, 0, len(files)),
	}

	for _, file := range files {
		result := s.ingestOne(ctx, collection, file)
		if result.OK {
			response.Processed++
		} else {
			response.OK = false
		}
		response.Results = append(response.Results, result)
	}

	event := s.logger.Info().
		Str("collection", string(collection)).
		Int("processed", response.Processed).
		Int("rejected", len(files)-response.Processed)
	if ip, ok := utils.GetClientIPFromContext(ctx); ok {
		event = event.Str("client_ip", ip)
	}
	event.Msg("ingest batch stored")

	return response, nil
}

func (s *ingestService) ingestOne(ctx context.Context, collection models.Collection, file models.IngestFile) models.IngestFileResult {
	result := models.IngestFileResult{Filename: file.Name}

	content := strings.TrimSpace(string(file.Content))
	if content == "" {
		result.Error = "file is empty"
		return result
	}

	doc := models.HistoryDocument{
		Collection: collection,
		Content:    content,
	}

	switch collection {
	case models.CollectionSupplierHistory:
		// Supplier history must be attributable; a missing header makes
		// the document unretrievable by supplier name.
		name := extractSupplierName(content)
		if name == "" {
			result.Error = `missing "Supplier: <Name>" header line`
			return result
		}
		doc.SupplierName = name
		result.SupplierName = name
	case models.CollectionItemHistory:
		// Item code is optional; untagged documents still match text
		// search.
		doc.ItemCode = extractItemCode(content)
		result.ItemCode = doc.ItemCode
	}

	if _, err := s.history.Save(ctx, doc); err != nil {
		s.logger.Error().Err(err).Str("filename", file.Name).Msg("cannot save history document")
		result.Error = "could not store document"
		return result
	}

	result.OK = true
	return result
}

func extractSupplierName(content string) string {
	match := supplierNamePattern.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func extractItemCode(content string) string {
	match := itemCodePattern.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return match[1]
}
