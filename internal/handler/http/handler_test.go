// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/service"
	"github.com/procurio/purchasing-automation/internal/validators"
	"github.com/procurio/purchasing-automation/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockPipelineService struct {
	runFn       func(ctx context.Context, req models.RunPipelineRequest, progress service.ProgressFunc) (models.RunPipelineResponse, error)
	groupOnlyFn func(ctx context.Context, req models.RunPipelineRequest) (models.GroupOnlyResponse, error)
}

func (m *mockPipelineService) Run(ctx context.Context, req models.RunPipelineRequest, progress service.ProgressFunc) (models.RunPipelineResponse, error) {
	if m.runFn != nil {
		return m.runFn(ctx, req, progress)
	}
	return models.RunPipelineResponse{}, nil
}

func (m *mockPipelineService) GroupOnly(ctx context.Context, req models.RunPipelineRequest) (models.GroupOnlyResponse, error) {
	if m.groupOnlyFn != nil {
		return m.groupOnlyFn(ctx, req)
	}
	return models.GroupOnlyResponse{}, nil
}

type mockIngestService struct {
	ingestFn func(ctx context.Context, collection models.Collection, files []models.IngestFile) (models.IngestResponse, error)
}

func (m *mockIngestService) Ingest(ctx context.Context, collection models.Collection, files []models.IngestFile) (models.IngestResponse, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, collection, files)
	}
	return models.IngestResponse{OK: true, Store: collection}, nil
}

type mockOutputService struct {
	listFn     func(ctx context.Context) (models.OutputListResponse, error)
	downloadFn func(ctx context.Context, filename string) (models.Document, error)
}

func (m *mockOutputService) List(ctx context.Context) (models.OutputListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return models.OutputListResponse{}, nil
}

func (m *mockOutputService) Download(ctx context.Context, filename string) (models.Document, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, filename)
	}
	return models.Document{}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockLLM struct {
	configured bool
}

func (m *mockLLM) Complete(_ context.Context, _, _, _ string) (string, error) {
	return "", nil
}

func (m *mockLLM) Configured() bool {
	return m.configured
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func defaultTestServices() *service.Services {
	return &service.Services{
		PipelineService: &mockPipelineService{},
		IngestService:   &mockIngestService{},
		OutputService:   &mockOutputService{},
		AppInfoService:  &mockAppInfoService{version: "1.0.0"},
	}
}

func newTestHandler(services *service.Services, appConfig config.App) *Handler {
	return NewHandler(
		services,
		validators.NewRequestValidator(),
		&mockLLM{configured: true},
		appConfig,
		config.Server{HTTPAddress: "localhost:8080"},
		logger.Nop(),
	)
}

func newTestRouter(t *testing.T, services *service.Services, appConfig config.App) *chi.Mux {
	t.Helper()

	router, err := newTestHandler(services, appConfig).Init()
	require.NoError(t, err)
	return router
}

func doRequest(router http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}
