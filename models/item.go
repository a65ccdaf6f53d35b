package models

// Item is one stock line enriched with replenishment recommendations.
// CurrentStock, WksToOOS and SuggestedQuantity are pointers because the
// source CSV may omit them; nil means "unknown", not zero.
type Item struct {
	// ItemCode uniquely identifies the item in the source system.
	ItemCode string `json:"item_code"`

	// ItemName is the human-readable item description.
	ItemName string `json:"item_name"`

	// RiskLevel is the stock-out risk label from the snapshot
	// (High, Medium, Low). "N/A" when the column is absent.
	RiskLevel string `json:"risk_level"`

	// CurrentStock is the on-hand quantity at snapshot time.
	CurrentStock *float64 `json:"current_stock"`

	// WksToOOS is the projected number of weeks until out-of-stock.
	WksToOOS *float64 `json:"wks_to_oos"`

	// SuggestedQuantity is the computed order quantity covering the target
	// number of weeks after the latest delivery date.
	SuggestedQuantity *int `json:"suggested_quantity"`

	// RecommendedLatestPODate is the last day a purchase order can be
	// placed without risking a stock-out (YYYY-MM-DD).
	RecommendedLatestPODate string `json:"recommended_latest_po_date"`

	// RecommendedLatestDeliveryDate is the last acceptable delivery day
	// (YYYY-MM-DD).
	RecommendedLatestDeliveryDate string `json:"recommended_latest_delivery_date"`

	// RecommendedLatestPOTiming is the PO urgency label
	// (e.g. "immediately", "within 2 weeks").
	RecommendedLatestPOTiming string `json:"recommended_latest_po_timing"`

	// RecommendedLatestDeliveryTiming is the delivery urgency label.
	RecommendedLatestDeliveryTiming string `json:"recommended_latest_delivery_timing"`
}

// SupplierGroup bundles all items of one supplier for one stock snapshot.
// It is the unit of work for the analysis pipeline: one group produces one
// report, one purchase request, and one email draft.
type SupplierGroup struct {
	SnapshotDate string `json:"snapshot_date"`
	Supplier     string `json:"supplier"`
	Items        []Item `json:"items"`
}
