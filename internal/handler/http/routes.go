// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/procurio/purchasing-automation/models"
)

// operation is one row of the static route table. The table is built once at
// startup and frozen for the process lifetime.
type operation struct {
	method string
	path   string
	name   string

	handler http.HandlerFunc

	// public operations skip API-key auth and rate limiting.
	public bool

	// streaming operations are exempt from the per-request timeout.
	streaming bool
}

func (h *Handler) operations() []operation {
	return []operation{
		{method: http.MethodPost, path: "/api/run", name: "pipeline.run", handler: h.runPipeline},
		{method: http.MethodPost, path: "/api/run/json", name: "pipeline.run_json", handler: h.runPipelineJSON},
		{method: http.MethodPost, path: "/api/run/stream", name: "pipeline.run_stream", handler: h.runPipelineStream, streaming: true},
		{method: http.MethodPost, path: "/api/group-only", name: "pipeline.group_only", handler: h.groupOnly},

		{method: http.MethodPost, path: "/api/ingest/supplier-history", name: "ingest.supplier_history", handler: h.ingest(models.CollectionSupplierHistory)},
		{method: http.MethodPost, path: "/api/ingest/supplier-history/zip", name: "ingest.supplier_history_zip", handler: h.ingestZip(models.CollectionSupplierHistory)},
		{method: http.MethodPost, path: "/api/ingest/item-history", name: "ingest.item_history", handler: h.ingest(models.CollectionItemHistory)},
		{method: http.MethodPost, path: "/api/ingest/item-history/zip", name: "ingest.item_history_zip", handler: h.ingestZip(models.CollectionItemHistory)},
		{method: http.MethodPost, path: "/api/ingest/analysis-examples", name: "ingest.analysis_examples", handler: h.ingest(models.CollectionAnalysisExamples)},
		{method: http.MethodPost, path: "/api/ingest/analysis-examples/zip", name: "ingest.analysis_examples_zip", handler: h.ingestZip(models.CollectionAnalysisExamples)},
		{method: http.MethodPost, path: "/api/ingest/request-examples", name: "ingest.request_examples", handler: h.ingest(models.CollectionRequestExamples)},
		{method: http.MethodPost, path: "/api/ingest/request-examples/zip", name: "ingest.request_examples_zip", handler: h.ingestZip(models.CollectionRequestExamples)},
		{method: http.MethodPost, path: "/api/ingest/email-examples", name: "ingest.email_examples", handler: h.ingest(models.CollectionEmailExamples)},
		{method: http.MethodPost, path: "/api/ingest/email-examples/zip", name: "ingest.email_examples_zip", handler: h.ingestZip(models.CollectionEmailExamples)},

		{method: http.MethodGet, path: "/api/output/list", name: "output.list", handler: h.outputList},
		{method: http.MethodGet, path: "/api/output/download", name: "output.download", handler: h.outputDownload},

		{method: http.MethodGet, path: "/api/version", name: "system.version", handler: h.getAppVersion},
		{method: http.MethodGet, path: "/health", name: "system.health", handler: h.health, public: true},
	}
}

// Init builds the router from the operation table. A duplicate
// (method, path) pair is a startup error: serving never begins with an
// ambiguous table.
func (h *Handler) Init() (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if len(h.serverConfig.CORSAllowedOrigins) > 0 {
		router.Use(h.withCORS)
	}

	if err := h.registerOperations(router, h.operations()); err != nil {
		return nil, err
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, r, models.NewNotFoundFailure("no such operation"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, r, models.NewNotFoundFailure("no such operation"))
	})

	return router, nil
}

func (h *Handler) registerOperations(router *chi.Mux, operations []operation) error {
	registered := make(map[string]string)
	for _, op := range operations {
		key := op.method + " " + op.path
		if existing, ok := registered[key]; ok {
			return fmt.Errorf("%w: %s already registered as %q, duplicated by %q",
				ErrDuplicateRouteRegistration, key, existing, op.name)
		}
		registered[key] = op.name

		handler := http.Handler(op.handler)
		if !op.streaming {
			handler = h.withTimeout(handler)
		}
		if !op.public {
			handler = h.withAPIKey(h.withRateLimit(handler))
		}
		router.Method(op.method, op.path, handler)
	}

	return nil
}
