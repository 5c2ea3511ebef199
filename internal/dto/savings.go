package dto

import (
	"github.com/shopspring/decimal"

	"findash/internal/models"
)

// CreateGoalRequest is the payload for creating a savings goal
type CreateGoalRequest struct {
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	// Deadline is an optional ISO date (2006-01-02)
	Deadline string `json:"deadline,omitempty"`
}

// CreateRuleRequest is the payload for creating a savings rule
type CreateRuleRequest struct {
	Type   string  `json:"type" validate:"required,savings_rule_type"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// UpdatePreferenceRequest switches how projected savings are tracked
type UpdatePreferenceRequest struct {
	TrackingPreference string `json:"tracking_preference" validate:"required,tracking_preference"`
}

// CalculateSavingsResponse mirrors the savings calculation endpoint of
// the original backend: total projected savings plus the monthly income
// and expense context the projection was computed against.
type CalculateSavingsResponse struct {
	TotalSavings       decimal.Decimal           `json:"total_savings"`
	MonthlyIncome      decimal.Decimal           `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal           `json:"monthly_expenses"`
	EffectiveExpenses  decimal.Decimal           `json:"effective_expenses"`
	TrackingPreference models.TrackingPreference `json:"tracking_preference"`
}
