// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// defaultSearchLimit caps history retrieval when the caller does not set one.
const defaultSearchLimit = 10

// historyRepository is the SQL-backed implementation of [HistoryRepository].
// Reference documents live in the "history_documents" table, partitioned by
// collection name. Retrieval is keyword-based: a document matches when its
// supplier name equals the requested one, its item code is among the
// requested codes, or its content contains one of the free-text terms.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
	uuid   *utils.UUIDGenerator
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
	}
}

// Save inserts a reference document into its collection.
func (r *historyRepository) Save(ctx context.Context, doc models.HistoryDocument) (models.HistoryDocument, error) {
	log := logger.FromContext(ctx)

	if doc.ID == "" {
		doc.ID = r.uuid.Generate()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert("history_documents").
		Columns("id", "collection", "content", "supplier_name", "item_code", "created_at").
		Values(doc.ID, string(doc.Collection), doc.Content, doc.SupplierName, doc.ItemCode, doc.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Save").Msg("error building insert query")
		return models.HistoryDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Save").Msg("error executing insert")
		return models.HistoryDocument{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return models.HistoryDocument{}, ErrHistoryNotSaved
	}

	return doc, nil
}

// Search returns documents from the requested collection matching any of the
// search criteria, newest first. An empty criteria set returns the newest
// documents of the collection unconditionally, so collections without
// supplier or item tagging (e.g. writing examples) still contribute context.
func (r *historyRepository) Search(ctx context.Context, search models.HistorySearch) ([]models.HistoryDocument, error) {
	log := logger.FromContext(ctx)

	limit := search.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	builder := r.db.builder.
		Select("id", "collection", "content", "supplier_name", "item_code", "created_at").
		From("history_documents").
		Where("collection = ?", string(search.Collection)).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	match := squirrel.Or{}
	if search.SupplierName != "" {
		match = append(match, squirrel.Eq{"supplier_name": search.SupplierName})
	}
	if len(search.ItemCodes) > 0 {
		match = append(match, squirrel.Eq{"item_code": search.ItemCodes})
	}
	for _, term := range search.Terms {
		if term == "" {
			continue
		}
		match = append(match, squirrel.Like{"content": "%" + term + "%"})
	}
	if len(match) > 0 {
		builder = builder.Where(match)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Search").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Search").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.HistoryDocument, 0, limit)
	for rows.Next() {
		var doc models.HistoryDocument
		var collection string
		if err := rows.Scan(&doc.ID, &collection, &doc.Content, &doc.SupplierName, &doc.ItemCode, &doc.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.Search").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		doc.Collection = models.Collection(collection)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}
