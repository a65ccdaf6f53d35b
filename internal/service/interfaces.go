package service

import (
	"context"

	"github.com/procurio/purchasing-automation/models"
)

// ProgressFunc receives pipeline progress notifications. Implementations must
// be fast; the pipeline calls them synchronously between phases. A nil
// ProgressFunc disables progress reporting.
type ProgressFunc func(event models.ProgressEvent)

type PipelineService interface {
	// Run executes the full pipeline on the given CSV: parse, group by
	// supplier, and generate an analysis report, a purchase request, and
	// an email draft per group. Generated documents are persisted before
	// the response is returned.
	Run(ctx context.Context, req models.RunPipelineRequest, progress ProgressFunc) (models.RunPipelineResponse, error)

	// GroupOnly parses and groups the CSV without calling the drafting
	// upstream. Useful for previewing the replenishment math.
	GroupOnly(ctx context.Context, req models.RunPipelineRequest) (models.GroupOnlyResponse, error)
}

type IngestService interface {
	// Ingest stores the given reference files into collection. Files are
	// processed independently; per-file failures are reported in the
	// result, not as an error.
	Ingest(ctx context.Context, collection models.Collection, files []models.IngestFile) (models.IngestResponse, error)
}

type OutputService interface {
	// List returns stored generated documents, newest first.
	List(ctx context.Context) (models.OutputListResponse, error)

	// Download returns the document stored under filename. The filename
	// must match the generated-document naming scheme; anything else is a
	// validation failure before storage is consulted.
	Download(ctx context.Context, filename string) (models.Document, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
