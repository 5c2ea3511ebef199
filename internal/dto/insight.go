package dto

import (
	"findash/internal/models"
)

// InsightRequest is the snapshot payload posted by the display layer
// for scoring. Only the monthly totals, trend and category distribution
// participate in the score.
type InsightRequest struct {
	MonthlyData          *models.PeriodTotals   `json:"monthly_data" validate:"required"`
	MonthlyTrend         []models.TrendPoint    `json:"monthly_trend"`
	CategoryDistribution []models.CategoryShare `json:"category_distribution"`
}

// Snapshot converts the request into the snapshot shape the analytics
// core consumes
func (r InsightRequest) Snapshot() models.AccountSnapshot {
	return models.AccountSnapshot{
		Monthly:              *r.MonthlyData,
		MonthlyTrend:         r.MonthlyTrend,
		CategoryDistribution: r.CategoryDistribution,
	}
}

// ScoringResponse is the wire contract with the scoring backend:
// a 0-100 score plus qualitative insights. Responses with a score
// outside that range or missing insights are treated as malformed.
type ScoringResponse struct {
	Score    float64          `json:"score"`
	Insights []models.Insight `json:"insights"`
}
