package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroup() models.SupplierGroup {
	qty := 650
	return models.SupplierGroup{
		SnapshotDate: "2026-08-20",
		Supplier:     "ACME Pte Ltd",
		Items: []models.Item{
			{
				ItemCode:          "1001",
				ItemName:          "Widget A",
				RiskLevel:         "High",
				SuggestedQuantity: &qty,
			},
		},
	}
}

func TestAgentRunner_RunAnalysisAgent_ValidJSON(t *testing.T) {
	llm := &mockLLM{
		completeFn: func(_ context.Context, model, systemPrompt, _ string) (string, error) {
			assert.Equal(t, "gpt-4o", model)
			assert.Equal(t, analysisAgentSystem, systemPrompt)
			return "```json\n{\"purchasing_report_markdown\":\"## Body\"}\n```", nil
		},
	}
	runner := newAgentRunner(llm, &mockHistoryRepo{}, "gpt-4o", "gpt-4o-mini", logger.Nop())

	output, err := runner.runAnalysisAgent(context.Background(), testGroup())

	require.NoError(t, err)
	assert.Equal(t, "## Body", output.PurchasingReportMarkdown)
}

func TestAgentRunner_RunAnalysisAgent_FallbackOnUnparsableCompletion(t *testing.T) {
	llm := &mockLLM{
		completeFn: func(_ context.Context, _, _, _ string) (string, error) {
			return "The supplier looks risky overall.", nil
		},
	}
	runner := newAgentRunner(llm, &mockHistoryRepo{}, "gpt-4o", "gpt-4o-mini", logger.Nop())

	output, err := runner.runAnalysisAgent(context.Background(), testGroup())

	require.NoError(t, err)
	assert.Equal(t, "The supplier looks risky overall.", output.PurchasingReportMarkdown)
	require.Len(t, output.ReplenishmentTimeline, 1)
	assert.Equal(t, "1001", output.ReplenishmentTimeline[0].ItemCode)
	assert.Equal(t, "ACME Pte Ltd", output.ReplenishmentTimeline[0].Supplier)
}

func TestAgentRunner_RunAnalysisAgent_EmbedsRetrievedHistory(t *testing.T) {
	history := &mockHistoryRepo{
		searchFn: func(_ context.Context, search models.HistorySearch) ([]models.HistoryDocument, error) {
			switch search.Collection {
			case models.CollectionSupplierHistory:
				assert.Equal(t, "ACME Pte Ltd", search.SupplierName)
				return []models.HistoryDocument{{Content: "2025: delayed twice"}}, nil
			case models.CollectionItemHistory:
				assert.Equal(t, []string{"1001"}, search.ItemCodes)
				return []models.HistoryDocument{{Content: "1001 stock-out in March"}}, nil
			}
			return nil, nil
		},
	}

	var prompt string
	llm := &mockLLM{
		completeFn: func(_ context.Context, _, _, userPrompt string) (string, error) {
			prompt = userPrompt
			return `{"purchasing_report_markdown":"x"}`, nil
		},
	}
	runner := newAgentRunner(llm, history, "gpt-4o", "gpt-4o-mini", logger.Nop())

	_, err := runner.runAnalysisAgent(context.Background(), testGroup())

	require.NoError(t, err)
	assert.Contains(t, prompt, "2025: delayed twice")
	assert.Contains(t, prompt, "1001 stock-out in March")
}

func TestAgentRunner_RunAnalysisAgent_DegradesWhenRetrievalFails(t *testing.T) {
	history := &mockHistoryRepo{
		searchFn: func(_ context.Context, _ models.HistorySearch) ([]models.HistoryDocument, error) {
			return nil, errors.New("db down")
		},
	}
	llm := &mockLLM{
		completeFn: func(_ context.Context, _, _, _ string) (string, error) {
			return `{"purchasing_report_markdown":"x"}`, nil
		},
	}
	runner := newAgentRunner(llm, history, "gpt-4o", "gpt-4o-mini", logger.Nop())

	_, err := runner.runAnalysisAgent(context.Background(), testGroup())

	require.NoError(t, err)
}

func TestAgentRunner_RunPRDraftAgent_FallbackShell(t *testing.T) {
	llm := &mockLLM{
		completeFn: func(_ context.Context, _, _, _ string) (string, error) {
			return "sorry, I cannot do that", nil
		},
	}
	runner := newAgentRunner(llm, &mockHistoryRepo{}, "gpt-4o", "gpt-4o-mini", logger.Nop())

	draft, err := runner.runPRDraftAgent(context.Background(), testGroup(), "High", models.AnalysisOutput{})

	require.NoError(t, err)
	var shell map[string]any
	require.NoError(t, json.Unmarshal(draft, &shell))
	assert.Equal(t, "ACME Pte Ltd", shell["supplier"])
	assert.Empty(t, shell["purchase_requests"])
}

func TestAgentRunner_RunEmailDraftAgent_UsesDraftModelAndSafeFields(t *testing.T) {
	var usedModel, prompt string
	llm := &mockLLM{
		completeFn: func(_ context.Context, model, systemPrompt, userPrompt string) (string, error) {
			usedModel = model
			prompt = userPrompt
			assert.Equal(t, emailDraftAgentSystem, systemPrompt)
			return "Dear ACME,", nil
		},
	}
	runner := newAgentRunner(llm, &mockHistoryRepo{}, "gpt-4o", "gpt-4o-mini", logger.Nop())

	group := testGroup()
	group.Items[0].CurrentStock = floatPtr(100)
	group.Items[0].WksToOOS = floatPtr(4)

	_, err := runner.runEmailDraftAgent(context.Background(), group, "High", models.AnalysisOutput{})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", usedModel)
	assert.NotContains(t, prompt, "current_stock")
	assert.NotContains(t, prompt, "wks_to_oos")
}

func TestAgentRunner_LLMErrorPropagates(t *testing.T) {
	wantErr := models.NewUpstreamFailure("llm request failed", errors.New("boom"))
	llm := &mockLLM{
		completeFn: func(_ context.Context, _, _, _ string) (string, error) {
			return "", wantErr
		},
	}
	runner := newAgentRunner(llm, &mockHistoryRepo{}, "gpt-4o", "gpt-4o-mini", logger.Nop())

	_, err := runner.runAnalysisAgent(context.Background(), testGroup())

	require.ErrorIs(t, err, wantErr)
}

func TestWithReference(t *testing.T) {
	assert.Equal(t, "input", withReference("Reference:", nil, "input"))

	combined := withReference("Reference:", []string{"ex1", "ex2"}, "input")
	assert.True(t, strings.HasPrefix(combined, "Reference:\n"))
	assert.Contains(t, combined, "ex1\n\nex2")
	assert.True(t, strings.HasSuffix(combined, "Input:\ninput"))
}
