package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"findash/internal/models"
)

type SavingsRepositoryTestSuite struct {
	suite.Suite
	repo      SavingsRepositoryInterface
	accountID string
}

func TestSavingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SavingsRepositoryTestSuite))
}

func (s *SavingsRepositoryTestSuite) SetupTest() {
	s.repo = NewSavingsRepository()
	s.accountID = "icici"
}

func (s *SavingsRepositoryTestSuite) TestCreateGoal() {
	deadline := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	goal, err := s.repo.CreateGoal(s.accountID, "Emergency Fund", decimal.NewFromInt(100000), &deadline)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, goal.ID)
	s.Equal("Emergency Fund", goal.Name)
	s.True(goal.CurrentAmount.IsZero())
	s.False(goal.CreatedAt.IsZero())
}

func (s *SavingsRepositoryTestSuite) TestListGoals_EmptyAccount() {
	s.Empty(s.repo.ListGoals("unused-account"))
}

func (s *SavingsRepositoryTestSuite) TestListGoals_PreservesCreationOrder() {
	first, _ := s.repo.CreateGoal(s.accountID, "First", decimal.NewFromInt(100), nil)
	second, _ := s.repo.CreateGoal(s.accountID, "Second", decimal.NewFromInt(200), nil)

	goals := s.repo.ListGoals(s.accountID)

	s.Require().Len(goals, 2)
	s.Equal(first.ID, goals[0].ID)
	s.Equal(second.ID, goals[1].ID)
}

func (s *SavingsRepositoryTestSuite) TestDeleteGoal() {
	goal, _ := s.repo.CreateGoal(s.accountID, "Car", decimal.NewFromInt(500000), nil)

	s.Require().NoError(s.repo.DeleteGoal(s.accountID, goal.ID))
	s.Empty(s.repo.ListGoals(s.accountID))
}

func (s *SavingsRepositoryTestSuite) TestDeleteGoal_Unknown() {
	s.ErrorIs(s.repo.DeleteGoal(s.accountID, uuid.New()), ErrGoalNotFound)
}

func (s *SavingsRepositoryTestSuite) TestGoalsAreScopedPerAccount() {
	s.repo.CreateGoal("sbi", "SBI Goal", decimal.NewFromInt(100), nil)

	s.Empty(s.repo.ListGoals(s.accountID))
	s.Len(s.repo.ListGoals("sbi"), 1)
}

func (s *SavingsRepositoryTestSuite) TestCreateRule_ActiveByDefault() {
	rule, err := s.repo.CreateRule(s.accountID, models.RuleFixed, decimal.NewFromInt(500))

	s.Require().NoError(err)
	s.True(rule.IsActive)
	s.Equal(models.RuleFixed, rule.Type)
}

func (s *SavingsRepositoryTestSuite) TestToggleRule() {
	rule, _ := s.repo.CreateRule(s.accountID, models.RulePercentage, decimal.NewFromInt(10))

	toggled, err := s.repo.ToggleRule(s.accountID, rule.ID)
	s.Require().NoError(err)
	s.False(toggled.IsActive)

	toggled, err = s.repo.ToggleRule(s.accountID, rule.ID)
	s.Require().NoError(err)
	s.True(toggled.IsActive)
}

func (s *SavingsRepositoryTestSuite) TestToggleRule_Unknown() {
	_, err := s.repo.ToggleRule(s.accountID, uuid.New())
	s.ErrorIs(err, ErrRuleNotFound)
}

func (s *SavingsRepositoryTestSuite) TestDeleteRule() {
	rule, _ := s.repo.CreateRule(s.accountID, models.RuleRoundUp, decimal.NewFromInt(1))

	s.Require().NoError(s.repo.DeleteRule(s.accountID, rule.ID))
	s.Empty(s.repo.ListRules(s.accountID))
}

func (s *SavingsRepositoryTestSuite) TestDeleteRule_Unknown() {
	s.ErrorIs(s.repo.DeleteRule(s.accountID, uuid.New()), ErrRuleNotFound)
}

func (s *SavingsRepositoryTestSuite) TestTrackingPreference_DefaultsToExpense() {
	s.Equal(models.TrackingExpense, s.repo.GetTrackingPreference(s.accountID))
}

func (s *SavingsRepositoryTestSuite) TestSetTrackingPreference() {
	s.repo.SetTrackingPreference(s.accountID, models.TrackingSeparate)

	s.Equal(models.TrackingSeparate, s.repo.GetTrackingPreference(s.accountID))
	// Other accounts keep the default
	s.Equal(models.TrackingExpense, s.repo.GetTrackingPreference("sbi"))
}

func (s *SavingsRepositoryTestSuite) TestListReturnsCopy() {
	s.repo.CreateGoal(s.accountID, "Original", decimal.NewFromInt(100), nil)

	goals := s.repo.ListGoals(s.accountID)
	goals[0].Name = "Mutated"

	s.Equal("Original", s.repo.ListGoals(s.accountID)[0].Name)
}
