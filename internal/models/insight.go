package models

import "time"

// InsightType classifies a qualitative insight
type InsightType string

const (
	InsightSavings InsightType = "savings"
	InsightBudget  InsightType = "budget"
	InsightHealth  InsightType = "health"
)

// Insight is one qualitative finding returned alongside the health score
type Insight struct {
	Type           InsightType `json:"type"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Severity       Severity    `json:"severity"`
	Recommendation string      `json:"recommendation,omitempty"`
}

// HealthReport is the scored insight bundle surfaced to the caller.
// HealthScore is 0-100; when scoring fails it carries the last-known
// value (initially 0) and a single fallback insight.
type HealthReport struct {
	HealthScore int       `json:"health_score"`
	Insights    []Insight `json:"insights"`
	GeneratedAt time.Time `json:"generated_at"`
}

// CategoryThresholdTable maps category names to concentration ceilings
// expressed as percentages (0-100)
type CategoryThresholdTable map[string]int

// DefaultCategoryCeiling applies to categories absent from the table
const DefaultCategoryCeiling = 20

// Ceiling returns the concentration ceiling for a category, falling back
// to the default for unknown categories
func (t CategoryThresholdTable) Ceiling(category string) int {
	if ceiling, ok := t[category]; ok {
		return ceiling
	}
	return DefaultCategoryCeiling
}
