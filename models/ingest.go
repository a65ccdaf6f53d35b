package models

// IngestFile is one uploaded reference document prior to processing.
type IngestFile struct {
	// Name is the client-supplied filename.
	Name string

	// Content is the raw file body. Documents are plain text or markdown.
	Content []byte
}

// IngestFileResult reports the outcome of ingesting a single file. Files are
// processed independently: one bad file never fails the whole batch.
type IngestFileResult struct {
	Filename string `json:"filename"`
	OK       bool   `json:"ok"`

	// SupplierName is echoed back for supplier-history ingests.
	SupplierName string `json:"supplier_name,omitempty"`

	// ItemCode is echoed back for item-history ingests when present.
	ItemCode string `json:"item_code,omitempty"`

	// Error describes why this file was rejected. Empty when OK.
	Error string `json:"error,omitempty"`
}

// IngestResponse summarises one ingest batch.
type IngestResponse struct {
	OK        bool               `json:"ok"`
	Store     Collection         `json:"store"`
	Processed int                `json:"processed"`
	Results   []IngestFileResult `json:"results"`
}
