// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// pipelineService runs the CSV-to-documents pipeline: parse, group by
// supplier, then per group generate an analysis report, a purchase request,
// and a supplier email draft. Every generated document is persisted under a
// deterministic filename before the run completes.
type pipelineService struct {
	agents    *agentRunner
	documents store.DocumentRepository
	outputDir string
	logger    *logger.Logger
}

// NewPipelineService constructs a [PipelineService]. outputDir may be empty;
// when set, generated documents are additionally mirrored to disk.
func NewPipelineService(agents *agentRunner, documents store.DocumentRepository, outputDir string, logger *logger.Logger) PipelineService {
	return &pipelineService{
		agents:    agents,
		documents: documents,
		outputDir: outputDir,
		logger:    logger,
	}
}

// GroupOnly implements [PipelineService].
func (s *pipelineService) GroupOnly(ctx context.Context, req models.RunPipelineRequest) (models.GroupOnlyResponse, error) {
	groups, err := s.parseAndGroup(req)
	if err != nil {
		return models.GroupOnlyResponse{}, err
	}
	return models.GroupOnlyResponse{Groups: groups}, nil
}

// Run implements [PipelineService].
func (s *pipelineService) Run(ctx context.Context, req models.RunPipelineRequest, progress ProgressFunc) (models.RunPipelineResponse, error) {
	notify := func(step string, detail map[string]any) {
		if progress != nil {
			progress(models.ProgressEvent{Step: step, Detail: detail})
		}
	}

	notify(models.StepCSVParsing, nil)
	rows, err := s.parseRows(req)
	if err != nil {
		return models.RunPipelineResponse{}, err
	}

	notify(models.StepItemGrouping, nil)
	groups, err := s.groupRows(rows)
	if err != nil {
		return models.RunPipelineResponse{}, err
	}
	notify(models.StepItemGroupingDone, map[string]any{"count": len(groups)})

	response := models.RunPipelineResponse{
		Groups:   groups,
		Reports:  make([]models.GeneratedFile, 0, len(groups)),
		Requests: make([]models.GeneratedFile, 0, len(groups)),
		Emails:   make([]models.GeneratedFile, 0, len(groups)),
	}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return models.RunPipelineResponse{}, models.NewUpstreamFailure("pipeline run cancelled", err)
		}

		riskLevel := "N/A"
		if len(group.Items) > 0 {
			riskLevel = group.Items[0].RiskLevel
		}
		safeSupplier := utils.SanitizeFilename(group.Supplier)

		notify(models.StepAnalysis, map[string]any{"supplier": group.Supplier})
		analysis, err := s.agents.runAnalysisAgent(ctx, group)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		if len(analysis.ReplenishmentTimeline) == 0 {
			analysis.ReplenishmentTimeline = timelineFromItems(group)
		}

		notify(models.StepReport, map[string]any{"supplier": group.Supplier})
		reportMD, err := s.agents.runReportDocAgent(ctx, group, analysis)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		reportFile, err := s.persist(ctx, models.DocumentAnalysis, group, safeSupplier, reportMD)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		notify(models.StepFileReady, fileReadyDetail(reportFile))
		response.Reports = append(response.Reports, reportFile)

		notify(models.StepPR, map[string]any{"supplier": group.Supplier})
		draft, err := s.agents.runPRDraftAgent(ctx, group, riskLevel, analysis)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		prMD, err := s.agents.runPRDocAgent(ctx, draft)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		prFile, err := s.persist(ctx, models.DocumentPR, group, safeSupplier, prMD)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		notify(models.StepFileReady, fileReadyDetail(prFile))
		response.Requests = append(response.Requests, prFile)

		notify(models.StepEmail, map[string]any{"supplier": group.Supplier})
		emailText, err := s.agents.runEmailDraftAgent(ctx, group, riskLevel, analysis)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		emailFile, err := s.persist(ctx, models.DocumentEmailDraft, group, safeSupplier, emailText)
		if err != nil {
			return models.RunPipelineResponse{}, err
		}
		notify(models.StepFileReady, fileReadyDetail(emailFile))
		response.Emails = append(response.Emails, emailFile)
	}

	// The complete event carries the full result so streaming clients can
	// download documents without a second request.
	notify(models.StepComplete, map[string]any{
		"groups":  len(response.Groups),
		"reports": len(response.Reports),
		"result":  response,
	})

	return response, nil
}

// parseAndGroup runs the deterministic half of the pipeline. An unusable CSV
// is the caller's fault and surfaces as a validation failure.
func (s *pipelineService) parseAndGroup(req models.RunPipelineRequest) ([]models.SupplierGroup, error) {
	rows, err := s.parseRows(req)
	if err != nil {
		return nil, err
	}
	return s.groupRows(rows)
}

func (s *pipelineService) parseRows(req models.RunPipelineRequest) ([]map[string]string, error) {
	rows, err := utils.ParseCSVRows(req.CSVContent, req.CSVFilename)
	if err != nil {
		return nil, models.NewValidationFailure(models.FieldViolation{
			Field:   "csv_content",
			Reason:  models.ReasonPatternMismatch,
			Message: fmt.Sprintf("CSV could not be parsed: %v", err),
		})
	}
	if len(rows) == 0 {
		return nil, models.NewValidationFailure(models.FieldViolation{
			Field:   "csv_content",
			Reason:  models.ReasonPatternMismatch,
			Message: "no valid CSV rows; ensure columns SupplierName, ItemCode, ItemName, CurrentStock, WksToOOS, RiskLevel (or similar)",
		})
	}
	return rows, nil
}

func (s *pipelineService) groupRows(rows []map[string]string) ([]models.SupplierGroup, error) {
	groups := groupBySupplierAndRecommend(rows)
	if len(groups) == 0 {
		return nil, models.NewValidationFailure(models.FieldViolation{
			Field:   "csv_content",
			Reason:  models.ReasonPatternMismatch,
			Message: "no groups by supplier; check the SupplierName/Supplier column",
		})
	}
	return groups, nil
}

// fileReadyDetail is the payload of a file_ready event. The encoded content
// rides along so streaming clients can offer the download immediately.
func fileReadyDetail(file models.GeneratedFile) map[string]any {
	return map[string]any{
		"filename":       file.Filename,
		"supplier":       file.Supplier,
		"content_base64": file.ContentBase64,
	}
}

// documentFilename builds the deterministic stored filename:
// <kind prefix>_<snapshot date>_<sanitised supplier>.md
func documentFilename(kind models.DocumentKind, snapshotDate, safeSupplier string) string {
	return fmt.Sprintf("%s_%s_%s.md", kind, snapshotDate, safeSupplier)
}

// persist stores one generated document and returns the response file entry,
// content embedded both raw and base64-encoded for direct browser download.
func (s *pipelineService) persist(ctx context.Context, kind models.DocumentKind, group models.SupplierGroup, safeSupplier, content string) (models.GeneratedFile, error) {
	filename := documentFilename(kind, group.SnapshotDate, safeSupplier)

	_, err := s.documents.Save(ctx, models.Document{
		Kind:         kind,
		SnapshotDate: group.SnapshotDate,
		Supplier:     group.Supplier,
		Filename:     filename,
		Content:      content,
	})
	if err != nil {
		return models.GeneratedFile{}, models.NewInternalFailure(err)
	}

	s.mirrorToDisk(filename, content)

	return models.GeneratedFile{
		SnapshotDate:  group.SnapshotDate,
		Supplier:      group.Supplier,
		Content:       content,
		Filename:      filename,
		ContentBase64: base64.StdEncoding.EncodeToString([]byte(content)),
	}, nil
}

// mirrorToDisk writes a copy into the configured output directory.
// Best-effort: the database copy is authoritative.
func (s *pipelineService) mirrorToDisk(filename, content string) {
	if s.outputDir == "" {
		return
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		s.logger.Warn().Err(err).Msg("cannot create output directory")
		return
	}
	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("cannot mirror document to disk")
	}
}
