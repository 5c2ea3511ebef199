package dto

import (
	"github.com/shopspring/decimal"

	"findash/internal/models"
)

// InstitutionSummary is a catalogue listing entry
type InstitutionSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MetricsResponse wraps the derived metrics together with the effective
// expense figure published by the savings projector. EffectiveExpenses
// equals the raw period expenses until the projector publishes an
// adjusted value for the account.
type MetricsResponse struct {
	Metrics           *models.Metrics `json:"metrics"`
	EffectiveExpenses decimal.Decimal `json:"effective_expenses"`
}

// AnomaliesResponse lists rule findings in evaluation order: spending
// spike first, then per-category threshold breaches, then credit
// utilization. Callers may re-sort by severity for display.
type AnomaliesResponse struct {
	Anomalies []models.Anomaly `json:"anomalies"`
	Count     int              `json:"count"`
}
