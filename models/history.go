// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package models

import "time"

// Collection names one of the reference-document stores the agents retrieve
// grounding context from.
type Collection string

const (
	// CollectionSupplierHistory holds past incidents per supplier
	// (delays, price changes, quality issues, negotiation patterns).
	CollectionSupplierHistory Collection = "supplier_history"

	// CollectionItemHistory holds past incidents per item code
	// (stock-outs, demand spikes, lead-time changes).
	CollectionItemHistory Collection = "item_history"

	// CollectionAnalysisExamples holds example purchasing analysis reports
	// used to steer report tone and structure.
	CollectionAnalysisExamples Collection = "analysis_examples"

	// CollectionRequestExamples holds example purchase request documents.
	CollectionRequestExamples Collection = "request_examples"

	// CollectionEmailExamples holds example supplier emails.
	CollectionEmailExamples Collection = "email_examples"
)

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionSupplierHistory, CollectionItemHistory,
		CollectionAnalysisExamples, CollectionRequestExamples,
		CollectionEmailExamples:
		return true
	}
	return false
}

// HistoryDocument is one ingested reference document.
type HistoryDocument struct {
	ID         string     `json:"id"`
	Collection Collection `json:"collection"`

	// Content is the full document text.
	Content string `json:"content"`

	// SupplierName is set for supplier-history documents, extracted from
	// the "Supplier: <Name>" header line.
	SupplierName string `json:"supplier_name,omitempty"`

	// ItemCode is set for item-history documents when an
	// "ItemCode: NNN" line is present.
	ItemCode string `json:"item_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// HistorySearch describes one retrieval query against a collection.
// SupplierName and ItemCodes narrow by metadata; Terms match against the
// document text. Zero-value filters are ignored.
type HistorySearch struct {
	Collection   Collection
	SupplierName string
	ItemCodes    []string
	Terms        []string

	// Limit caps the number of returned documents; non-positive means the
	// store default.
	Limit int
}
