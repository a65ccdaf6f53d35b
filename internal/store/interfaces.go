package store

import (
	"context"
	"time"

	"github.com/procurio/purchasing-automation/models"
)

// DocumentRepository persists generated markdown documents (analyses,
// purchase-request drafts, email drafts) and serves the output listing and
// download endpoints.
type DocumentRepository interface {
	// Save inserts doc, replacing any existing document with the same
	// filename. Returns the stored document with server-assigned fields.
	Save(ctx context.Context, doc models.Document) (models.Document, error)

	// List returns filename and creation time of all stored documents,
	// newest first.
	List(ctx context.Context) ([]models.OutputFileEntry, error)

	// FindByFilename returns the document stored under filename or
	// [ErrDocumentNotFound].
	FindByFilename(ctx context.Context, filename string) (models.Document, error)

	// DeleteOlderThan removes documents created before cutoff and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// HistoryRepository persists ingested reference documents and retrieves the
// ones relevant to a supplier group before generation.
type HistoryRepository interface {
	// Save inserts a reference document into its collection.
	Save(ctx context.Context, doc models.HistoryDocument) (models.HistoryDocument, error)

	// Search returns documents from the requested collection matching any
	// of the search's supplier name, item codes, or free-text terms,
	// newest first, capped at the search limit.
	Search(ctx context.Context, search models.HistorySearch) ([]models.HistoryDocument, error)
}
