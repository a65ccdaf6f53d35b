// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/procurio/purchasing-automation/internal/adapter"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
	"github.com/procurio/purchasing-automation/models"
)

// Retrieval sizes per generation phase. History is capped tighter than
// writing examples because incident documents are long.
const (
	historyRetrievalLimit = 5
	exampleRetrievalLimit = 2
)

// agentRunner executes the drafting agents for one supplier group. Grounding
// context (supplier incidents, item incidents, writing examples) is retrieved
// from the history store up front and embedded into each prompt payload.
type agentRunner struct {
	llm        adapter.LLMClient
	history    store.HistoryRepository
	model      string
	draftModel string
	logger     *logger.Logger
}

func newAgentRunner(llm adapter.LLMClient, history store.HistoryRepository, model, draftModel string, logger *logger.Logger) *agentRunner {
	return &agentRunner{
		llm:        llm,
		history:    history,
		model:      model,
		draftModel: draftModel,
		logger:     logger,
	}
}

// retrieve fetches history documents and degrades to an empty context when
// the store fails: a generation run should not die on a retrieval hiccup.
func (a *agentRunner) retrieve(ctx context.Context, search models.HistorySearch) []string {
	docs, err := a.history.Search(ctx, search)
	if err != nil {
		a.logger.Warn().Err(err).
			Str("collection", string(search.Collection)).
			Msg("history retrieval failed, continuing without context")
		return nil
	}

	contents := make([]string, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, doc.Content)
	}
	return contents
}

func (a *agentRunner) retrieveExamples(ctx context.Context, collection models.Collection, term string) []string {
	return a.retrieve(ctx, models.HistorySearch{
		Collection: collection,
		Terms:      []string{term},
		Limit:      exampleRetrievalLimit,
	})
}

// analysisPayload is the single JSON object the analysis agent receives.
type analysisPayload struct {
	SnapshotDate    string        `json:"snapshot_date"`
	Supplier        string        `json:"supplier"`
	Items           []models.Item `json:"items"`
	SupplierHistory []string      `json:"supplier_history"`
	ItemHistory     []string      `json:"item_history"`
}

// runAnalysisAgent produces the structured analysis for one supplier group.
// When the completion cannot be parsed as JSON, the raw text becomes the
// report markdown and the timeline falls back to the input items, so one
// malformed completion never loses the group.
func (a *agentRunner) runAnalysisAgent(ctx context.Context, group models.SupplierGroup) (models.AnalysisOutput, error) {
	itemCodes := make([]string, 0, len(group.Items))
	for _, item := range group.Items {
		itemCodes = append(itemCodes, item.ItemCode)
	}

	payload := analysisPayload{
		SnapshotDate: group.SnapshotDate,
		Supplier:     group.Supplier,
		Items:        group.Items,
		SupplierHistory: a.retrieve(ctx, models.HistorySearch{
			Collection:   models.CollectionSupplierHistory,
			SupplierName: group.Supplier,
			Limit:        historyRetrievalLimit,
		}),
		ItemHistory: a.retrieve(ctx, models.HistorySearch{
			Collection: models.CollectionItemHistory,
			ItemCodes:  itemCodes,
			Limit:      historyRetrievalLimit,
		}),
	}

	userJSON, err := json.Marshal(payload)
	if err != nil {
		return models.AnalysisOutput{}, models.NewInternalFailure(err)
	}

	text, err := a.llm.Complete(ctx, a.model, analysisAgentSystem, string(userJSON))
	if err != nil {
		return models.AnalysisOutput{}, err
	}

	var output models.AnalysisOutput
	if raw, exErr := extractJSONBlock(text); exErr == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &output); jsonErr == nil &&
			(output.PurchasingReportMarkdown != "" || len(output.ReplenishmentTimeline) > 0) {
			return output, nil
		}
	}

	a.logger.Warn().Str("supplier", group.Supplier).Msg("analysis completion was not valid JSON, using fallback shape")
	return models.AnalysisOutput{
		PurchasingReportMarkdown: text,
		CriticalQuestions:        []models.CriticalQuestion{},
		ReplenishmentTimeline:    timelineFromItems(group),
	}, nil
}

// timelineFromItems mirrors the input items into timeline entries, used when
// the analysis agent did not return a usable timeline.
func timelineFromItems(group models.SupplierGroup) []models.TimelineItem {
	timeline := make([]models.TimelineItem, 0, len(group.Items))
	for _, item := range group.Items {
		timeline = append(timeline, models.TimelineItem{
			ItemCode:                        item.ItemCode,
			ItemName:                        item.ItemName,
			Supplier:                        group.Supplier,
			RiskLevel:                       item.RiskLevel,
			CurrentStock:                    item.CurrentStock,
			WksToOOS:                        item.WksToOOS,
			SuggestedQuantity:               item.SuggestedQuantity,
			SnapshotDate:                    group.SnapshotDate,
			RecommendedLatestPOTiming:       item.RecommendedLatestPOTiming,
			RecommendedLatestDeliveryTiming: item.RecommendedLatestDeliveryTiming,
			RecommendedLatestPODate:         item.RecommendedLatestPODate,
			RecommendedLatestDeliveryDate:   item.RecommendedLatestDeliveryDate,
		})
	}
	return timeline
}

// analysisResult is the payload handed to the report document agent.
type analysisResult struct {
	SnapshotDate             string                    `json:"snapshot_date"`
	Supplier                 string                    `json:"supplier"`
	PurchasingReportMarkdown string                    `json:"purchasing_report_markdown"`
	CriticalQuestions        []models.CriticalQuestion `json:"critical_questions"`
	ReplenishmentTimeline    []models.TimelineItem     `json:"replenishment_timeline"`
}

// runReportDocAgent turns the analysis into a human-readable markdown report.
func (a *agentRunner) runReportDocAgent(ctx context.Context, group models.SupplierGroup, analysis models.AnalysisOutput) (string, error) {
	result := analysisResult{
		SnapshotDate:             group.SnapshotDate,
		Supplier:                 group.Supplier,
		PurchasingReportMarkdown: analysis.PurchasingReportMarkdown,
		CriticalQuestions:        analysis.CriticalQuestions,
		ReplenishmentTimeline:    analysis.ReplenishmentTimeline,
	}

	userJSON, err := json.Marshal(result)
	if err != nil {
		return "", models.NewInternalFailure(err)
	}

	examples := a.retrieveExamples(ctx, models.CollectionAnalysisExamples, "analysis report structure and tone")
	user := withReference("Reference (tone/structure only):", examples, string(userJSON))

	return a.llm.Complete(ctx, a.model, reportDocAgentSystem, user)
}

// prDraftPayload is the input to the purchase-request draft agent.
type prDraftPayload struct {
	SnapshotDate   string                `json:"snapshot_date"`
	Supplier       string                `json:"supplier"`
	RiskLevel      string                `json:"risk_level"`
	AnalysisOutput models.AnalysisOutput `json:"analysis_output"`
}

// runPRDraftAgent produces the structured purchase-request JSON. A completion
// that does not parse falls back to an empty request shell, keeping the
// downstream document agent operable.
func (a *agentRunner) runPRDraftAgent(ctx context.Context, group models.SupplierGroup, riskLevel string, analysis models.AnalysisOutput) (json.RawMessage, error) {
	payload := prDraftPayload{
		SnapshotDate:   group.SnapshotDate,
		Supplier:       group.Supplier,
		RiskLevel:      riskLevel,
		AnalysisOutput: analysis,
	}

	userJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, models.NewInternalFailure(err)
	}

	examples := a.retrieveExamples(ctx, models.CollectionRequestExamples, "purchase request structure")
	user := withReference("Reference (structure only):", examples, string(userJSON))

	text, err := a.llm.Complete(ctx, a.model, prDraftAgentSystem, user)
	if err != nil {
		return nil, err
	}

	if raw, exErr := extractJSONBlock(text); exErr == nil && json.Valid([]byte(raw)) {
		return json.RawMessage(raw), nil
	}

	a.logger.Warn().Str("supplier", group.Supplier).Msg("purchase request draft was not valid JSON, using fallback shell")
	fallback, _ := json.Marshal(map[string]any{
		"document_type":     "purchase_request",
		"supplier":          group.Supplier,
		"snapshot_date":     group.SnapshotDate,
		"purchase_requests": []any{},
	})
	return fallback, nil
}

// runPRDocAgent renders the structured draft into a markdown requisition.
func (a *agentRunner) runPRDocAgent(ctx context.Context, draft json.RawMessage) (string, error) {
	examples := a.retrieveExamples(ctx, models.CollectionRequestExamples, "purchase requisition format")
	user := withReference("Reference (format only):", examples, string(draft))

	return a.llm.Complete(ctx, a.model, prDocAgentSystem, user)
}

// emailPayload is the input to the email draft agent. Only external-safe item
// fields are included.
type emailPayload struct {
	SnapshotDate   string                `json:"snapshot_date"`
	Supplier       string                `json:"supplier"`
	RiskLevel      string                `json:"risk_level"`
	Items          []emailItem           `json:"items"`
	AnalysisOutput models.AnalysisOutput `json:"analysis_output"`
}

type emailItem struct {
	ItemCode                      string `json:"item_code"`
	ItemName                      string `json:"item_name"`
	SuggestedQuantity             *int   `json:"suggested_quantity"`
	RecommendedLatestDeliveryDate string `json:"recommended_latest_delivery_date"`
}

// runEmailDraftAgent writes the supplier-facing email using the cheaper draft
// model.
func (a *agentRunner) runEmailDraftAgent(ctx context.Context, group models.SupplierGroup, riskLevel string, analysis models.AnalysisOutput) (string, error) {
	items := make([]emailItem, 0, len(group.Items))
	for _, item := range group.Items {
		items = append(items, emailItem{
			ItemCode:                      item.ItemCode,
			ItemName:                      item.ItemName,
			SuggestedQuantity:             item.SuggestedQuantity,
			RecommendedLatestDeliveryDate: item.RecommendedLatestDeliveryDate,
		})
	}

	payload := emailPayload{
		SnapshotDate:   group.SnapshotDate,
		Supplier:       group.Supplier,
		RiskLevel:      riskLevel,
		Items:          items,
		AnalysisOutput: analysis,
	}

	userJSON, err := json.Marshal(payload)
	if err != nil {
		return "", models.NewInternalFailure(err)
	}

	examples := a.retrieveExamples(ctx, models.CollectionEmailExamples, "supplier email tone and structure")
	user := withReference("Reference (tone only):", examples, string(userJSON))

	return a.llm.Complete(ctx, a.draftModel, emailDraftAgentSystem, user)
}

// withReference prepends retrieved example documents to the input payload.
func withReference(header string, examples []string, input string) string {
	if len(examples) == 0 {
		return input
	}
	return header + "\n" + strings.Join(examples, "\n\n") + "\n\nInput:\n" + input
}
