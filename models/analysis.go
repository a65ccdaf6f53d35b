package models

// CriticalQuestion is one operational question raised by the analysis agent.
type CriticalQuestion struct {
	// Target is "general" or a specific item code the question concerns.
	Target string `json:"target"`

	// Question is the operational question to resolve before ordering.
	Question string `json:"question"`

	// Reason records what grounded the question:
	// "supplier_history", "item_history", or "generic".
	Reason string `json:"reason"`
}

// TimelineItem is one row of the replenishment timeline produced by the
// analysis agent. It mirrors Item plus the group context and free-form notes
// summarising any relevant item history.
type TimelineItem struct {
	ItemCode                        string   `json:"item_code"`
	ItemName                        string   `json:"item_name"`
	Supplier                        string   `json:"supplier"`
	RiskLevel                       string   `json:"risk_level"`
	CurrentStock                    *float64 `json:"current_stock"`
	WksToOOS                        *float64 `json:"wks_to_oos"`
	SuggestedQuantity               *int     `json:"suggested_quantity"`
	SnapshotDate                    string   `json:"snapshot_date"`
	RecommendedLatestPOTiming       string   `json:"recommended_latest_po_timing"`
	RecommendedLatestDeliveryTiming string   `json:"recommended_latest_delivery_timing"`
	RecommendedLatestPODate         string   `json:"recommended_latest_po_date"`
	RecommendedLatestDeliveryDate   string   `json:"recommended_latest_delivery_date"`
	Notes                           string   `json:"notes,omitempty"`
}

// AnalysisOutput is the structured result of the analysis agent for one
// supplier group.
type AnalysisOutput struct {
	PurchasingReportMarkdown string             `json:"purchasing_report_markdown"`
	CriticalQuestions        []CriticalQuestion `json:"critical_questions"`
	ReplenishmentTimeline    []TimelineItem     `json:"replenishment_timeline"`
}
