package cost

import (
	"errors"
	"fmt"
)

// Pricing is USD per 1K input and output tokens for one provider model.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

var pricingTable = map[string]map[string]Pricing{
	"openai": {
		"gpt-4o-mini": {InputPer1K: 0.00015, OutputPer1K: 0.0006},
		"gpt-4o":      {InputPer1K: 0.0025, OutputPer1K: 0.01},
	},
	"anthropic": {
		"claude-sonnet-4-20250514":   {InputPer1K: 0.003, OutputPer1K: 0.015},
		"claude-3-5-haiku-20241022":  {InputPer1K: 0.0008, OutputPer1K: 0.004},
		"claude-3-5-sonnet-20241022": {InputPer1K: 0.003, OutputPer1K: 0.015},
	},
}

// ErrUnknownPricing marks a provider/model combination missing from the
// pricing table. Cost is never silently defaulted to zero.
var ErrUnknownPricing = errors.New("no pricing configured")

// BudgetExceededError reports that cumulative tracked spend has passed the
// caller's ceiling.
type BudgetExceededError struct {
	Spent float64
	Limit float64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("daily budget exceeded: spent $%.4f of $%.2f limit", e.Spent, e.Limit)
}

// Record is one tracked LLM call.
type Record struct {
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// Summary aggregates the ledger.
type Summary struct {
	TotalRequests     int     `json:"total_requests"`
	TotalCost         float64 `json:"total_cost"`
	TotalInputTokens  int     `json:"total_input_tokens"`
	TotalOutputTokens int     `json:"total_output_tokens"`
}

// Tracker is an append-only in-process ledger of LLM spend. Not safe for
// concurrent use.
type Tracker struct {
	records   []Record
	totalCost float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// TrackRequest computes the cost of one LLM call from the pricing table,
// appends it to the ledger and returns it. An unknown provider or model is a
// configuration error.
func (t *Tracker) TrackRequest(provider, model string, inputTokens, outputTokens int) (float64, error) {
	models, ok := pricingTable[provider]
	if !ok {
		return 0, fmt.Errorf("%w for provider %q", ErrUnknownPricing, provider)
	}

	pricing, ok := models[model]
	if !ok {
		return 0, fmt.Errorf("%w for model %q of provider %q", ErrUnknownPricing, model, provider)
	}

	cost := float64(inputTokens)/1000*pricing.InputPer1K + float64(outputTokens)/1000*pricing.OutputPer1K

	t.records = append(t.records, Record{
		Provider:     provider,
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Cost:         cost,
	})
	t.totalCost += cost

	return cost, nil
}

// TotalCost returns the running sum of all tracked costs.
func (t *Tracker) TotalCost() float64 {
	return t.totalCost
}

// GetSummary recomputes aggregates from the ledger alone.
func (t *Tracker) GetSummary() Summary {
	var s Summary
	for _, r := range t.records {
		s.TotalRequests++
		s.TotalCost += r.Cost
		s.TotalInputTokens += r.InputTokens
		s.TotalOutputTokens += r.OutputTokens
	}
	return s
}

// CheckBudget returns a *BudgetExceededError when spend has passed limit.
// Spend exactly at the limit still passes.
func (t *Tracker) CheckBudget(limit float64) error {
	if t.totalCost > limit {
		return &BudgetExceededError{Spent: t.totalCost, Limit: limit}
	}
	return nil
}
