// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package models

import "time"

// DocumentKind tells what stage of the pipeline produced a stored document.
// The kind also determines the filename prefix accepted by the download
// endpoint.
type DocumentKind string

const (
	// DocumentAnalysis is a purchasing analysis report (markdown).
	DocumentAnalysis DocumentKind = "analysis"

	// DocumentPR is a purchase request document (markdown).
	DocumentPR DocumentKind = "pr"

	// DocumentEmailDraft is a supplier email draft (plain text).
	DocumentEmailDraft DocumentKind = "email_draft"
)

// Document is one generated document persisted for later download.
type Document struct {
	ID           string       `json:"id"`
	Kind         DocumentKind `json:"kind"`
	SnapshotDate string       `json:"snapshot_date"`
	Supplier     string       `json:"supplier"`

	// Filename is unique; re-running the pipeline for the same snapshot
	// and supplier overwrites the previous document.
	Filename string `json:"filename"`

	// Content is the full document body.
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

// OutputFileEntry is one row of the generated-documents listing.
type OutputFileEntry struct {
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// OutputListResponse lists stored generated documents, newest first.
type OutputListResponse struct {
	Files []OutputFileEntry `json:"files"`

	// RetentionMaxAge is the configured document retention period as a
	// duration string; empty when retention is disabled.
	RetentionMaxAge string `json:"retention_max_age,omitempty"`
}
