package services

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"findash/internal/models"
)

type MetricsServiceTestSuite struct {
	suite.Suite
	service MetricsServiceInterface
}

func TestMetricsServiceSuite(t *testing.T) {
	suite.Run(t, new(MetricsServiceTestSuite))
}

func (s *MetricsServiceTestSuite) SetupTest() {
	s.service = NewMetricsService(nil)
}

func (s *MetricsServiceTestSuite) testSnapshot() models.AccountSnapshot {
	return models.AccountSnapshot{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.Company(),
		Color: gofakeit.HexColor(),
		Daily: models.PeriodTotals{
			Income:   decimal.NewFromInt(2550),
			Expenses: decimal.NewFromInt(1220),
			Balance:  decimal.NewFromInt(1500),
		},
		Weekly: models.PeriodTotals{
			Income:   decimal.NewFromInt(15000),
			Expenses: decimal.NewFromInt(8090),
			Balance:  decimal.NewFromInt(18000),
		},
		Monthly: models.PeriodTotals{
			Income:   decimal.NewFromInt(65000),
			Expenses: decimal.NewFromInt(35000),
			Balance:  decimal.NewFromInt(120000),
		},
		MonthlyTrend: []models.TrendPoint{
			{Month: "May", Income: decimal.NewFromInt(67000), Expenses: decimal.NewFromInt(36500)},
			{Month: "Jun", Income: decimal.NewFromInt(65000), Expenses: decimal.NewFromInt(30000)},
		},
		CategoryDistribution: []models.CategoryShare{
			{Category: "Housing", Value: decimal.NewFromInt(12000), Percentage: decimal.NewFromInt(35)},
			{Category: "Food", Value: decimal.NewFromInt(7000), Percentage: decimal.NewFromInt(20)},
		},
	}
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_SavingsRateScenario() {
	metrics := s.service.CalculateMetrics(s.testSnapshot(), models.GranularityMonthly)

	// (65000-35000)/65000*100
	s.InDelta(46.15, metrics.CurrentPeriod.SavingsRate.InexactFloat64(), 0.01)
	s.True(metrics.CurrentPeriod.Income.Equal(decimal.NewFromInt(65000)))
	s.True(metrics.CurrentPeriod.Expenses.Equal(decimal.NewFromInt(35000)))
	s.True(metrics.CurrentPeriod.Balance.Equal(decimal.NewFromInt(120000)))
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_ZeroIncomeYieldsZeroSavingsRate() {
	snapshot := s.testSnapshot()
	snapshot.Monthly.Income = decimal.Zero

	metrics := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)

	s.True(metrics.CurrentPeriod.SavingsRate.IsZero())
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_NegativeSavingsRateReportedAsIs() {
	snapshot := s.testSnapshot()
	snapshot.Monthly.Income = decimal.NewFromInt(30000)
	snapshot.Monthly.Expenses = decimal.NewFromInt(45000)

	metrics := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)

	s.True(metrics.CurrentPeriod.SavingsRate.IsNegative())
	s.InDelta(-50.0, metrics.CurrentPeriod.SavingsRate.InexactFloat64(), 0.01)
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_GranularitySelectsPeriodTotals() {
	snapshot := s.testSnapshot()

	daily := s.service.CalculateMetrics(snapshot, models.GranularityDaily)
	weekly := s.service.CalculateMetrics(snapshot, models.GranularityWeekly)

	s.True(daily.CurrentPeriod.Income.Equal(decimal.NewFromInt(2550)))
	s.True(weekly.CurrentPeriod.Income.Equal(decimal.NewFromInt(15000)))
	s.Equal(models.GranularityDaily, daily.Granularity)
	s.Equal(models.GranularityWeekly, weekly.Granularity)
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_MonthlyComparison() {
	metrics := s.service.CalculateMetrics(s.testSnapshot(), models.GranularityMonthly)

	// (65000-67000)/67000*100 and (30000-36500)/36500*100
	s.InDelta(-2.985, metrics.MonthlyComparison.IncomeChange.InexactFloat64(), 0.01)
	s.InDelta(-17.808, metrics.MonthlyComparison.ExpenseChange.InexactFloat64(), 0.01)
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_ShortTrendYieldsZeroComparison() {
	snapshot := s.testSnapshot()
	snapshot.MonthlyTrend = snapshot.MonthlyTrend[:1]

	metrics := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)

	s.True(metrics.MonthlyComparison.IncomeChange.IsZero())
	s.True(metrics.MonthlyComparison.ExpenseChange.IsZero())
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_ZeroPreviousMonthYieldsZeroChange() {
	snapshot := s.testSnapshot()
	snapshot.MonthlyTrend = []models.TrendPoint{
		{Month: "May", Income: decimal.Zero, Expenses: decimal.Zero},
		{Month: "Jun", Income: decimal.NewFromInt(65000), Expenses: decimal.NewFromInt(30000)},
	}

	metrics := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)

	s.True(metrics.MonthlyComparison.IncomeChange.IsZero())
	s.True(metrics.MonthlyComparison.ExpenseChange.IsZero())
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_CategoryBreakdownUsesMonthlyExpenses() {
	metrics := s.service.CalculateMetrics(s.testSnapshot(), models.GranularityDaily)

	s.Len(metrics.CategoryBreakdown, 2)
	// Breakdown stays monthly-resolution even for daily metrics: 35000*35%
	s.True(metrics.CategoryBreakdown[0].Amount.Equal(decimal.NewFromInt(12250)),
		"got %s", metrics.CategoryBreakdown[0].Amount)
	s.True(metrics.CategoryBreakdown[1].Amount.Equal(decimal.NewFromInt(7000)))
}

func (s *MetricsServiceTestSuite) TestCalculateMetrics_Idempotent() {
	snapshot := s.testSnapshot()

	first := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)
	second := s.service.CalculateMetrics(snapshot, models.GranularityMonthly)

	s.Equal(first, second)
}
