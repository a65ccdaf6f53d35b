package models

// RunPipelineRequest is the JSON-body variant of a pipeline run: the raw CSV
// text plus the original filename, used to extract the snapshot date.
type RunPipelineRequest struct {
	// CSVContent is the full CSV text, header row included.
	CSVContent string `json:"csv_content" validate:"required"`

	// CSVFilename is the source filename. A DDMMYY digit group in it is
	// interpreted as the snapshot date (e.g. Urgent_Stock_050425.csv).
	CSVFilename string `json:"csv_filename" validate:"omitempty,max=255"`
}

// GeneratedFile is one document produced by the pipeline, embedded into the
// response so the frontend can offer a download without a second round trip.
type GeneratedFile struct {
	SnapshotDate string `json:"snapshot_date"`
	Supplier     string `json:"supplier"`

	// Content is the markdown (reports, purchase requests) or plain text
	// (email drafts) of the document.
	Content string `json:"content"`

	// Filename is the stored filename, also accepted by the download
	// endpoint. Always set; a generated file without a name is a
	// programming error.
	Filename string `json:"filename" validate:"required"`

	// ContentBase64 is the document body encoded for direct browser
	// download.
	ContentBase64 string `json:"content_base64"`
}

// RunPipelineResponse is the result of one full pipeline run.
type RunPipelineResponse struct {
	// Groups holds the supplier grouping with computed recommendations.
	Groups []SupplierGroup `json:"groups"`

	// Reports holds one purchasing analysis report per supplier group.
	Reports []GeneratedFile `json:"reports" validate:"dive"`

	// Requests holds one purchase request document per supplier group.
	Requests []GeneratedFile `json:"requests" validate:"dive"`

	// Emails holds one supplier email draft per supplier group.
	Emails []GeneratedFile `json:"emails" validate:"dive"`
}

// GroupOnlyResponse is the result of grouping without agent calls.
type GroupOnlyResponse struct {
	Groups []SupplierGroup `json:"groups"`
}

// Pipeline progress steps streamed over SSE, in emission order.
const (
	StepCSVParsing       = "csv_parsing"
	StepItemGrouping     = "item_grouping"
	StepItemGroupingDone = "item_grouping_done"
	StepAnalysis         = "analysis"
	StepReport           = "report"
	StepPR               = "pr"
	StepEmail            = "email"
	StepFileReady        = "file_ready"
	StepComplete         = "complete"
	StepError            = "error"
)

// ProgressEvent is one pipeline progress notification. Detail keys depend on
// the step (supplier, filename, count, ...).
type ProgressEvent struct {
	Step   string         `json:"step"`
	Detail map[string]any `json:"detail,omitempty"`
}
