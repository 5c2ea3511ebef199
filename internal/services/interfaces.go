package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"findash/internal/dto"
	"findash/internal/models"
)

// MetricsServiceInterface derives display metrics from a snapshot
type MetricsServiceInterface interface {
	// CalculateMetrics derives period totals, savings rate, month-over-month
	// comparison and the category breakdown for one account snapshot
	CalculateMetrics(snapshot models.AccountSnapshot, granularity models.Granularity) *models.Metrics
}

// AnomalyServiceInterface runs the fixed anomaly rule set over a snapshot
type AnomalyServiceInterface interface {
	// DetectAnomalies evaluates the spending spike, category threshold and
	// credit utilization rules, in that order
	DetectAnomalies(snapshot models.AccountSnapshot) []models.Anomaly
}

// ReportServiceInterface produces period summary reports
type ReportServiceInterface interface {
	GenerateReport(snapshot models.AccountSnapshot, granularity models.Granularity) *models.Report
}

// SavingsServiceInterface manages savings goals, rules and the projected
// savings calculation for an account
type SavingsServiceInterface interface {
	AddGoal(accountID string, name string, targetAmount decimal.Decimal, deadline *time.Time, snapshot models.AccountSnapshot) (*models.SavingsGoal, error)
	ListGoals(accountID string) []models.SavingsGoal
	RemoveGoal(accountID string, goalID uuid.UUID, snapshot models.AccountSnapshot) error

	AddRule(accountID string, ruleType models.RuleType, amount decimal.Decimal, snapshot models.AccountSnapshot) (*models.SavingsRule, error)
	ListRules(accountID string) []models.SavingsRule
	ToggleRule(accountID string, ruleID uuid.UUID, snapshot models.AccountSnapshot) (*models.SavingsRule, error)
	RemoveRule(accountID string, ruleID uuid.UUID, snapshot models.AccountSnapshot) error

	GetTrackingPreference(accountID string) models.TrackingPreference
	SetTrackingPreference(accountID string, preference models.TrackingPreference, snapshot models.AccountSnapshot)

	// CalculateSavings computes total projected savings and the effective
	// expense figure for the account under its tracking preference
	CalculateSavings(accountID string, snapshot models.AccountSnapshot) *dto.CalculateSavingsResponse
}

// InsightServiceInterface produces the scored health report, degrading to
// a fallback when the scoring backend is unavailable
type InsightServiceInterface interface {
	GetInsights(ctx context.Context, token string, snapshot models.AccountSnapshot) *models.HealthReport
}

// ScoringClientInterface abstracts the scoring backend so local and
// remote implementations are interchangeable
type ScoringClientInterface interface {
	Score(ctx context.Context, token string, snapshot models.AccountSnapshot) (*dto.ScoringResponse, error)
}

// ExpenseListenerInterface receives effective expense updates pushed by
// the savings service after every mutation or recalculation
type ExpenseListenerInterface interface {
	OnExpenseUpdate(accountID string, effectiveExpenses decimal.Decimal)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
