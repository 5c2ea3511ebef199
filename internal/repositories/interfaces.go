package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"findash/internal/models"
)

// CatalogRepositoryInterface provides read-only access to the static
// per-institution snapshot catalogue and the category threshold table,
// both supplied as reference configuration.
type CatalogRepositoryInterface interface {
	GetInstitution(id string) (*models.AccountSnapshot, error)
	ListInstitutions() []models.AccountSnapshot
	CategoryThresholds() models.CategoryThresholdTable
}

// SavingsRepositoryInterface owns the session-scoped savings state:
// goals, rules and the tracking preference, keyed by institution ID.
// The store is in-memory; nothing outlives the process.
type SavingsRepositoryInterface interface {
	CreateGoal(accountID string, name string, targetAmount decimal.Decimal, deadline *time.Time) (*models.SavingsGoal, error)
	ListGoals(accountID string) []models.SavingsGoal
	DeleteGoal(accountID string, goalID uuid.UUID) error

	CreateRule(accountID string, ruleType models.RuleType, amount decimal.Decimal) (*models.SavingsRule, error)
	ListRules(accountID string) []models.SavingsRule
	ToggleRule(accountID string, ruleID uuid.UUID) (*models.SavingsRule, error)
	DeleteRule(accountID string, ruleID uuid.UUID) error

	GetTrackingPreference(accountID string) models.TrackingPreference
	SetTrackingPreference(accountID string, preference models.TrackingPreference)
}
