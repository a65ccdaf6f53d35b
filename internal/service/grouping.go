// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// Replenishment lead-time model. Imported goods take importLeadWeeks to
// arrive plus internalLeadWeeks to pass inbound handling; an order placed
// today is sellable totalLeadWeeks from now. Suggested quantities target
// coverageWeeksAfterDelivery weeks of demand past the delivery date.
const (
	importLeadWeeks            = 16
	internalLeadWeeks          = 2
	totalLeadWeeks             = importLeadWeeks + internalLeadWeeks
	coverageWeeksAfterDelivery = 26
)

const dateLayout = "2006-01-02"

// itemRecommendation holds the computed replenishment dates and urgency
// labels for one stock line.
type itemRecommendation struct {
	LatestPODate         string
	LatestDeliveryDate   string
	LatestPOTiming       string
	LatestDeliveryTiming string
}

// buildTimingLabel converts a horizon in weeks into the urgency wording used
// throughout generated documents.
func buildTimingLabel(weeks float64) string {
	switch {
	case weeks <= 0.5:
		return "immediately"
	case weeks <= 1:
		return "within 1 week"
	case weeks <= 2:
		return "within 2 weeks"
	case weeks <= 4:
		return "within 2–4 weeks"
	case weeks <= 8:
		return "within 4–8 weeks"
	default:
		return fmt.Sprintf("within %d weeks", int(math.Round(weeks)))
	}
}

// buildItemRecommendation computes the latest viable purchase-order and
// delivery dates for one item.
//
// The current stock runs out wksToOOS weeks after the snapshot; that day is
// the last acceptable delivery date. Subtracting the total lead time gives
// the last day a PO can be placed, clamped at the snapshot date when the
// item is already inside the lead-time window. A missing or non-positive
// wksToOOS falls back to the total lead time.
func buildItemRecommendation(snapshotDate string, wksToOOS *float64) (itemRecommendation, error) {
	snapshot, err := time.Parse(dateLayout, strings.TrimSpace(snapshotDate))
	if err != nil {
		return itemRecommendation{}, fmt.Errorf("snapshot_date is missing or invalid: %q", snapshotDate)
	}

	effectiveWks := float64(totalLeadWeeks)
	if wksToOOS != nil && *wksToOOS > 0 {
		effectiveWks = *wksToOOS
	}

	latestDelivery := snapshot.AddDate(0, 0, int(effectiveWks*7))
	latestPO := latestDelivery.AddDate(0, 0, -totalLeadWeeks*7)
	if latestPO.Before(snapshot) {
		latestPO = snapshot
	}

	weeksUntilPO := latestPO.Sub(snapshot).Hours() / (7 * 24)
	weeksUntilDelivery := latestDelivery.Sub(snapshot).Hours() / (7 * 24)

	return itemRecommendation{
		LatestPODate:         latestPO.Format(dateLayout),
		LatestDeliveryDate:   latestDelivery.Format(dateLayout),
		LatestPOTiming:       buildTimingLabel(weeksUntilPO),
		LatestDeliveryTiming: buildTimingLabel(weeksUntilDelivery),
	}, nil
}

// suggestedQuantity computes the order quantity that keeps
// coverageWeeksAfterDelivery weeks of demand in stock past the delivery
// date. Weekly demand is inferred from how long the current stock lasts.
// Returns nil when stock or weeks-to-out-of-stock are unknown or
// non-positive.
func suggestedQuantity(currentStock, wksToOOS *float64) *int {
	if currentStock == nil || wksToOOS == nil {
		return nil
	}
	stock, wks := *currentStock, *wksToOOS
	if stock <= 0 || wks <= 0 {
		return nil
	}

	weeklyDemand := stock / wks
	qty := int(math.Ceil(weeklyDemand * coverageWeeksAfterDelivery))
	return &qty
}

// parseOptionalFloat converts a CSV cell to a float pointer; empty or
// unparsable cells become nil.
func parseOptionalFloat(raw string, ok bool) *float64 {
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// groupBySupplierAndRecommend groups parsed CSV rows by supplier, preserving
// first-seen supplier order, and attaches replenishment recommendations to
// every item. Rows missing the snapshot date, supplier, item code, or item
// name are skipped.
func groupBySupplierAndRecommend(rows []map[string]string) []models.SupplierGroup {
	groups := make(map[string]*models.SupplierGroup)
	order := make([]string, 0)

	for _, row := range rows {
		snapshotDate := strings.TrimSpace(firstField(row, "snapshotdate", "snapshot_date"))
		supplier := strings.TrimSpace(firstField(row, "suppliername", "supplier"))
		riskLevel := strings.TrimSpace(firstField(row, "risklevel", "risk_level"))
		itemCode, hasItemCode := utils.FindField(row, "itemcode")
		itemName, hasItemName := findFirstField(row, "itemname", "item_name")
		currentStock := parseOptionalFloat(findFirstField(row, "currentstock", "current_stock"))
		wksToOOS := parseOptionalFloat(findFirstField(row, "wkstooos", "wks_to_oos"))

		if snapshotDate == "" || supplier == "" || !hasItemCode || !hasItemName {
			continue
		}

		rec, err := buildItemRecommendation(snapshotDate, wksToOOS)
		if err != nil {
			continue
		}

		if riskLevel == "" {
			riskLevel = "N/A"
		}

		item := models.Item{
			ItemCode:                        itemCode,
			ItemName:                        itemName,
			RiskLevel:                       riskLevel,
			CurrentStock:                    currentStock,
			WksToOOS:                        wksToOOS,
			SuggestedQuantity:               suggestedQuantity(currentStock, wksToOOS),
			RecommendedLatestPODate:         rec.LatestPODate,
			RecommendedLatestDeliveryDate:   rec.LatestDeliveryDate,
			RecommendedLatestPOTiming:       rec.LatestPOTiming,
			RecommendedLatestDeliveryTiming: rec.LatestDeliveryTiming,
		}

		group, seen := groups[supplier]
		if !seen {
			group = &models.SupplierGroup{
				SnapshotDate: snapshotDate,
				Supplier:     supplier,
			}
			groups[supplier] = group
			order = append(order, supplier)
		}
		group.Items = append(group.Items, item)
	}

	result := make([]models.SupplierGroup, 0, len(order))
	for _, supplier := range order {
		result = append(result, *groups[supplier])
	}
	return result
}

// firstField returns the first matching field value, empty when none match.
func firstField(row map[string]string, names ...string) string {
	value, _ := findFirstField(row, names...)
	return value
}

// findFirstField tries each candidate column name in order.
func findFirstField(row map[string]string, names ...string) (string, bool) {
	for _, name := range names {
		if value, ok := utils.FindField(row, name); ok && strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}
