// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
// It stores generated markdown documents in the "documents" table, keyed by
// filename so a re-run for the same supplier and snapshot date overwrites the
// previous output.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
	uuid   *utils.UUIDGenerator
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
	}
}

// Save inserts doc, replacing any existing row with the same filename.
// Transient driver failures (connection loss, deadlock) are retried once.
func (r *documentRepository) Save(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if doc.ID == "" {
		doc.ID = r.uuid.Generate()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert("documents").
		Columns("id", "kind", "snapshot_date", "supplier", "filename", "content", "created_at").
		Values(doc.ID, string(doc.Kind), doc.SnapshotDate, doc.Supplier, doc.Filename, doc.Content, doc.CreatedAt).
		Suffix(`ON CONFLICT (filename) DO UPDATE SET
			kind = excluded.kind,
			snapshot_date = excluded.snapshot_date,
			supplier = excluded.supplier,
			content = excluded.content,
			created_at = excluded.created_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Save").Msg("error building insert query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.retryable(err) {
		log.Warn().Err(err).Str("func", "*documentRepository.Save").Msg("transient DB error, retrying once")
		result, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Save").Msg("error executing insert")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return models.Document{}, ErrDocumentNotSaved
	}

	return doc, nil
}

// List returns filename and creation time of all stored documents, newest first.
func (r *documentRepository) List(ctx context.Context) ([]models.OutputFileEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("filename", "created_at").
		From("documents").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.OutputFileEntry, 0)
	for rows.Next() {
		var entry models.OutputFileEntry
		if err := rows.Scan(&entry.Filename, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*documentRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// FindByFilename returns the document stored under filename.
//
// Error handling:
//   - empty result set → [ErrDocumentNotFound]
//   - any other driver-level error → wrapped as [ErrExecutingQuery]
func (r *documentRepository) FindByFilename(ctx context.Context, filename string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "kind", "snapshot_date", "supplier", "filename", "content", "created_at").
		From("documents").
		Where("filename = ?", filename).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindByFilename").Msg("error building select query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	var kind string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&doc.ID, &kind, &doc.SnapshotDate, &doc.Supplier, &doc.Filename, &doc.Content, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.FindByFilename").Msg("error scanning row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	doc.Kind = models.DocumentKind(kind)

	return doc, nil
}

// DeleteOlderThan removes documents created before cutoff.
func (r *documentRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("documents").
		Where("created_at < ?", cutoff).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteOlderThan").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteOlderThan").Msg("error executing delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *documentRepository) retryable(err error) bool {
	if r.db.errorClassificator == nil {
		return false
	}
	return r.db.errorClassificator.Classify(err) == Retryable
}
