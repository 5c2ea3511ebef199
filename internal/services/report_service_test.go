package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"findash/internal/models"
)

type ReportServiceTestSuite struct {
	suite.Suite
	service  ReportServiceInterface
	snapshot models.AccountSnapshot
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.service = NewReportService(nil)
	s.snapshot = models.AccountSnapshot{
		ID: "hdfc",
		Daily: models.PeriodTotals{
			Income:   decimal.NewFromInt(3000),
			Expenses: decimal.NewFromInt(2000),
		},
		Weekly: models.PeriodTotals{
			Income:   decimal.NewFromInt(20000),
			Expenses: decimal.NewFromInt(14000),
		},
		Monthly: models.PeriodTotals{
			Income:   decimal.NewFromInt(75000),
			Expenses: decimal.NewFromInt(55500),
		},
		CategoryDistribution: []models.CategoryShare{
			{Category: "Housing", Percentage: decimal.NewFromInt(13)},
		},
	}
}

func (s *ReportServiceTestSuite) TestGenerateReport_DailyDivisor() {
	report := s.service.GenerateReport(s.snapshot, models.GranularityDaily)

	s.True(report.AverageDailyExpense.Equal(decimal.NewFromInt(2000)))
	s.True(report.Income.Equal(decimal.NewFromInt(3000)))
}

func (s *ReportServiceTestSuite) TestGenerateReport_WeeklyDivisor() {
	report := s.service.GenerateReport(s.snapshot, models.GranularityWeekly)

	s.True(report.AverageDailyExpense.Equal(decimal.NewFromInt(2000)))
	s.True(report.Expenses.Equal(decimal.NewFromInt(14000)))
}

func (s *ReportServiceTestSuite) TestGenerateReport_MonthlyDivisor() {
	report := s.service.GenerateReport(s.snapshot, models.GranularityMonthly)

	// 55500/30, fixed 30-day month
	s.True(report.AverageDailyExpense.Equal(decimal.NewFromInt(1850)))
}

func (s *ReportServiceTestSuite) TestGenerateReport_CategoryBreakdownIsMonthlyResolution() {
	report := s.service.GenerateReport(s.snapshot, models.GranularityDaily)

	s.Require().Len(report.CategoryBreakdown, 1)
	// 55500*13%
	s.True(report.CategoryBreakdown[0].Amount.Equal(decimal.NewFromInt(7215)),
		"got %s", report.CategoryBreakdown[0].Amount)
}

func (s *ReportServiceTestSuite) TestGenerateReport_SetsGeneratedAt() {
	report := s.service.GenerateReport(s.snapshot, models.GranularityMonthly)

	s.False(report.GeneratedAt.IsZero())
	s.Equal(models.GranularityMonthly, report.Granularity)
}
