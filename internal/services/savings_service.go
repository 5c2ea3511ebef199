package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"findash/internal/dto"
	"findash/internal/models"
	"findash/internal/repositories"
)

var (
	ErrInvalidGoalName   = errors.New("goal name is required")
	ErrInvalidGoalTarget = errors.New("goal target amount must be positive")
	ErrInvalidRuleType   = errors.New("invalid savings rule type")
	ErrInvalidRuleAmount = errors.New("rule amount must be positive")
)

var roundUpShare = decimal.NewFromFloat(0.10)

// savingsService manages savings goals and rules and projects total
// savings for an account. After every mutation it recomputes the
// effective expense figure and pushes it to the listener so downstream
// consumers never read a stale value.
type savingsService struct {
	repo     repositories.SavingsRepositoryInterface
	listener ExpenseListenerInterface
	recorder MetricsRecorderInterface
}

// NewSavingsService creates the savings projection service
func NewSavingsService(
	repo repositories.SavingsRepositoryInterface,
	listener ExpenseListenerInterface,
	recorder MetricsRecorderInterface,
) SavingsServiceInterface {
	return &savingsService{
		repo:     repo,
		listener: listener,
		recorder: recorder,
	}
}

// AddGoal validates and stores a new goal, then republishes effective
// expenses for the account
func (s *savingsService) AddGoal(accountID string, name string, targetAmount decimal.Decimal, deadline *time.Time, snapshot models.AccountSnapshot) (*models.SavingsGoal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidGoalName
	}
	if !targetAmount.IsPositive() {
		return nil, ErrInvalidGoalTarget
	}

	goal, err := s.repo.CreateGoal(accountID, name, targetAmount, deadline)
	if err != nil {
		return nil, err
	}

	s.recordMutation(accountID, "goal_created")
	s.publish(accountID, snapshot)
	slog.Info("savings goal created",
		"account_id", accountID,
		"goal_id", goal.ID,
		"target_amount", goal.TargetAmount)

	return goal, nil
}

func (s *savingsService) ListGoals(accountID string) []models.SavingsGoal {
	return s.repo.ListGoals(accountID)
}

func (s *savingsService) RemoveGoal(accountID string, goalID uuid.UUID, snapshot models.AccountSnapshot) error {
	if err := s.repo.DeleteGoal(accountID, goalID); err != nil {
		return err
	}
	s.recordMutation(accountID, "goal_deleted")
	s.publish(accountID, snapshot)
	return nil
}

func (s *savingsService) AddRule(accountID string, ruleType models.RuleType, amount decimal.Decimal, snapshot models.AccountSnapshot) (*models.SavingsRule, error) {
	if !models.IsValidRuleType(ruleType) {
		return nil, ErrInvalidRuleType
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidRuleAmount
	}

	rule, err := s.repo.CreateRule(accountID, ruleType, amount)
	if err != nil {
		return nil, err
	}

	s.recordMutation(accountID, "rule_created")
	s.publish(accountID, snapshot)
	slog.Info("savings rule created",
		"account_id", accountID,
		"rule_id", rule.ID,
		"type", rule.Type)

	return rule, nil
}

func (s *savingsService) ListRules(accountID string) []models.SavingsRule {
	return s.repo.ListRules(accountID)
}

func (s *savingsService) ToggleRule(accountID string, ruleID uuid.UUID, snapshot models.AccountSnapshot) (*models.SavingsRule, error) {
	rule, err := s.repo.ToggleRule(accountID, ruleID)
	if err != nil {
		return nil, err
	}
	s.recordMutation(accountID, "rule_toggled")
	s.publish(accountID, snapshot)
	return rule, nil
}

func (s *savingsService) RemoveRule(accountID string, ruleID uuid.UUID, snapshot models.AccountSnapshot) error {
	if err := s.repo.DeleteRule(accountID, ruleID); err != nil {
		return err
	}
	s.recordMutation(accountID, "rule_deleted")
	s.publish(accountID, snapshot)
	return nil
}

func (s *savingsService) GetTrackingPreference(accountID string) models.TrackingPreference {
	return s.repo.GetTrackingPreference(accountID)
}

// SetTrackingPreference stores the preference and republishes effective
// expenses, since the preference directly changes the published figure
func (s *savingsService) SetTrackingPreference(accountID string, preference models.TrackingPreference, snapshot models.AccountSnapshot) {
	s.repo.SetTrackingPreference(accountID, preference)
	s.recordMutation(accountID, "preference_updated")
	s.publish(accountID, snapshot)
}

// CalculateSavings computes the full savings projection for an account
// and publishes the resulting effective expense figure
func (s *savingsService) CalculateSavings(accountID string, snapshot models.AccountSnapshot) *dto.CalculateSavingsResponse {
	total := s.totalSavings(accountID, snapshot)
	preference := s.repo.GetTrackingPreference(accountID)
	effective := s.effectiveExpenses(snapshot, total, preference)

	if s.listener != nil {
		s.listener.OnExpenseUpdate(accountID, effective)
	}
	if s.recorder != nil {
		s.recorder.RecordGauge("savings.projected", total.InexactFloat64(), nil)
	}

	return &dto.CalculateSavingsResponse{
		TotalSavings:       total,
		MonthlyIncome:      snapshot.Monthly.Income,
		MonthlyExpenses:    snapshot.Monthly.Expenses,
		EffectiveExpenses:  effective,
		TrackingPreference: preference,
	}
}

// totalSavings sums accumulated goal amounts plus the contribution of
// every active rule
func (s *savingsService) totalSavings(accountID string, snapshot models.AccountSnapshot) decimal.Decimal {
	total := decimal.Zero

	for _, goal := range s.repo.ListGoals(accountID) {
		total = total.Add(goal.CurrentAmount)
	}

	for _, rule := range s.repo.ListRules(accountID) {
		if !rule.IsActive {
			continue
		}
		total = total.Add(ruleContribution(rule, snapshot))
	}

	return total
}

// ruleContribution computes one rule's monthly contribution. Round-up
// rules contribute a flat 10% of monthly expenses and ignore their
// stored amount; see the projection notes in DESIGN.md.
func ruleContribution(rule models.SavingsRule, snapshot models.AccountSnapshot) decimal.Decimal {
	switch rule.Type {
	case models.RuleRoundUp:
		return snapshot.Monthly.Expenses.Mul(roundUpShare)
	case models.RulePercentage:
		return snapshot.Monthly.Income.Mul(rule.Amount).Div(oneHundred)
	case models.RuleFixed:
		return rule.Amount
	default:
		return decimal.Zero
	}
}

// effectiveExpenses folds projected savings into the expense figure when
// the preference treats savings as an expense bucket
func (s *savingsService) effectiveExpenses(snapshot models.AccountSnapshot, total decimal.Decimal, preference models.TrackingPreference) decimal.Decimal {
	if preference == models.TrackingExpense {
		return snapshot.Monthly.Expenses.Add(total)
	}
	return snapshot.Monthly.Expenses
}

// publish recomputes and pushes the effective expense figure. Mutations
// that reach here have already succeeded; consumers must never observe
// a pre-mutation value afterwards.
func (s *savingsService) publish(accountID string, snapshot models.AccountSnapshot) {
	if s.listener == nil {
		return
	}
	total := s.totalSavings(accountID, snapshot)
	preference := s.repo.GetTrackingPreference(accountID)
	s.listener.OnExpenseUpdate(accountID, s.effectiveExpenses(snapshot, total, preference))
}

func (s *savingsService) recordMutation(accountID string, operation string) {
	if s.recorder != nil {
		s.recorder.IncrementCounter("savings.mutation", map[string]string{
			"operation": operation,
		})
	}
	slog.Debug("savings state mutated", "account_id", accountID, "operation", operation)
}
