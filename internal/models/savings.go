package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleType identifies how a savings rule computes its contribution
type RuleType string

const (
	RuleRoundUp    RuleType = "round-up"
	RulePercentage RuleType = "percentage"
	RuleFixed      RuleType = "fixed"
)

// AllRuleTypes returns all valid savings rule type constants
func AllRuleTypes() []RuleType {
	return []RuleType{RuleRoundUp, RulePercentage, RuleFixed}
}

// IsValidRuleType checks if a rule type string is valid
func IsValidRuleType(t RuleType) bool {
	for _, valid := range AllRuleTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// TrackingPreference controls whether projected savings are folded into
// the expense figure shown to the user
type TrackingPreference string

const (
	// TrackingExpense counts savings as an expense bucket for stricter budgeting
	TrackingExpense TrackingPreference = "expense"
	// TrackingSeparate keeps savings out of the expense figure
	TrackingSeparate TrackingPreference = "separate"
)

// IsValidTrackingPreference checks if a tracking preference string is valid
func IsValidTrackingPreference(p TrackingPreference) bool {
	return p == TrackingExpense || p == TrackingSeparate
}

// SavingsGoal is a user-defined savings target. CurrentAmount starts at
// zero and changes only through explicit contribution events; this core
// does not clamp it against TargetAmount.
type SavingsGoal struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SavingsRule is a recurring savings instruction. Amount semantics
// depend on Type: percent of monthly income for percentage rules, an
// absolute amount for fixed rules. Round-up rules contribute a flat 10%
// of monthly expenses and do not read Amount (see SavingsService).
type SavingsRule struct {
	ID        uuid.UUID       `json:"id"`
	Type      RuleType        `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}
