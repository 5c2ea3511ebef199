package services

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/models"
)

// reportService assembles period summary reports
type reportService struct {
	recorder MetricsRecorderInterface
}

// NewReportService creates the report generation service
func NewReportService(recorder MetricsRecorderInterface) ReportServiceInterface {
	return &reportService{recorder: recorder}
}

// GenerateReport summarizes one period of a snapshot. The average daily
// expense uses fixed period lengths of 1, 7 and 30 days; calendar month
// lengths are deliberately not consulted.
func (s *reportService) GenerateReport(snapshot models.AccountSnapshot, granularity models.Granularity) *models.Report {
	period := SelectPeriod(snapshot, granularity)

	report := &models.Report{
		Granularity:         granularity,
		Income:              period.Income,
		Expenses:            period.Expenses,
		AverageDailyExpense: period.Expenses.Div(periodDays(granularity)),
		CategoryBreakdown:   categoryBreakdown(snapshot),
		GeneratedAt:         time.Now().UTC(),
	}

	if s.recorder != nil {
		s.recorder.IncrementCounter("report.generated", map[string]string{
			"granularity": string(granularity),
		})
	}

	slog.Debug("report generated",
		"account_id", snapshot.ID,
		"granularity", granularity)

	return report
}

func periodDays(granularity models.Granularity) decimal.Decimal {
	switch granularity {
	case models.GranularityDaily:
		return decimal.NewFromInt(1)
	case models.GranularityWeekly:
		return decimal.NewFromInt(7)
	default:
		return decimal.NewFromInt(30)
	}
}
