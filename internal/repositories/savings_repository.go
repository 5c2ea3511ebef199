package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"findash/internal/models"
)

var (
	ErrGoalNotFound = errors.New("savings goal not found")
	ErrRuleNotFound = errors.New("savings rule not found")
)

// accountSavings holds one account's goals, rules and preference.
// Slices preserve insertion order so listings are stable.
type accountSavings struct {
	goals      []models.SavingsGoal
	rules      []models.SavingsRule
	preference models.TrackingPreference
}

// savingsRepository is the in-memory savings store. State lives for the
// lifetime of the process only; a mutex guards the account map because
// handlers run on concurrent request goroutines.
type savingsRepository struct {
	mu       sync.RWMutex
	accounts map[string]*accountSavings
}

// NewSavingsRepository creates an empty in-memory savings store
func NewSavingsRepository() SavingsRepositoryInterface {
	return &savingsRepository{
		accounts: make(map[string]*accountSavings),
	}
}

// account returns the state bucket for an account, creating it on first
// use. Callers must hold the write lock.
func (r *savingsRepository) account(accountID string) *accountSavings {
	state, ok := r.accounts[accountID]
	if !ok {
		state = &accountSavings{preference: models.TrackingExpense}
		r.accounts[accountID] = state
	}
	return state
}

// CreateGoal stores a new goal with a zero starting amount
func (r *savingsRepository) CreateGoal(accountID string, name string, targetAmount decimal.Decimal, deadline *time.Time) (*models.SavingsGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal := models.SavingsGoal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     time.Now().UTC(),
	}

	state := r.account(accountID)
	state.goals = append(state.goals, goal)

	return &goal, nil
}

// ListGoals returns the account's goals in creation order
func (r *savingsRepository) ListGoals(accountID string) []models.SavingsGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return []models.SavingsGoal{}
	}

	out := make([]models.SavingsGoal, len(state.goals))
	copy(out, state.goals)
	return out
}

// DeleteGoal removes a goal by ID, ErrGoalNotFound when absent
func (r *savingsRepository) DeleteGoal(accountID string, goalID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return ErrGoalNotFound
	}

	for i, goal := range state.goals {
		if goal.ID == goalID {
			state.goals = append(state.goals[:i], state.goals[i+1:]...)
			return nil
		}
	}
	return ErrGoalNotFound
}

// CreateRule stores a new rule, active by default
func (r *savingsRepository) CreateRule(accountID string, ruleType models.RuleType, amount decimal.Decimal) (*models.SavingsRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule := models.SavingsRule{
		ID:        uuid.New(),
		Type:      ruleType,
		Amount:    amount,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	state := r.account(accountID)
	state.rules = append(state.rules, rule)

	return &rule, nil
}

// ListRules returns the account's rules in creation order
func (r *savingsRepository) ListRules(accountID string) []models.SavingsRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return []models.SavingsRule{}
	}

	out := make([]models.SavingsRule, len(state.rules))
	copy(out, state.rules)
	return out
}

// ToggleRule flips a rule's active flag and returns the updated rule
func (r *savingsRepository) ToggleRule(accountID string, ruleID uuid.UUID) (*models.SavingsRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return nil, ErrRuleNotFound
	}

	for i := range state.rules {
		if state.rules[i].ID == ruleID {
			state.rules[i].IsActive = !state.rules[i].IsActive
			rule := state.rules[i]
			return &rule, nil
		}
	}
	return nil, ErrRuleNotFound
}

// DeleteRule removes a rule by ID, ErrRuleNotFound when absent
func (r *savingsRepository) DeleteRule(accountID string, ruleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return ErrRuleNotFound
	}

	for i, rule := range state.rules {
		if rule.ID == ruleID {
			state.rules = append(state.rules[:i], state.rules[i+1:]...)
			return nil
		}
	}
	return ErrRuleNotFound
}

// GetTrackingPreference returns the account's preference, defaulting to
// counting savings as expenses
func (r *savingsRepository) GetTrackingPreference(accountID string) models.TrackingPreference {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.accounts[accountID]
	if !ok {
		return models.TrackingExpense
	}
	return state.preference
}

// SetTrackingPreference stores the account's preference
func (r *savingsRepository) SetTrackingPreference(accountID string, preference models.TrackingPreference) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.account(accountID).preference = preference
}
