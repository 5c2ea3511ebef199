package services

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"findash/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// metricsService derives display metrics from account snapshots. It is
// stateless; every calculation is a pure function of its inputs.
type metricsService struct {
	recorder MetricsRecorderInterface
}

// NewMetricsService creates the metrics derivation service
func NewMetricsService(recorder MetricsRecorderInterface) MetricsServiceInterface {
	return &metricsService{recorder: recorder}
}

// CalculateMetrics derives the full metric set for one snapshot. The
// period figures follow the requested granularity while the comparison
// and category breakdown are always monthly-resolution.
func (s *metricsService) CalculateMetrics(snapshot models.AccountSnapshot, granularity models.Granularity) *models.Metrics {
	period := SelectPeriod(snapshot, granularity)

	metrics := &models.Metrics{
		Granularity: granularity,
		CurrentPeriod: models.PeriodMetrics{
			Income:      period.Income,
			Expenses:    period.Expenses,
			Balance:     period.Balance,
			SavingsRate: savingsRate(period),
		},
		MonthlyComparison: monthlyComparison(snapshot.MonthlyTrend),
		CategoryBreakdown: categoryBreakdown(snapshot),
	}

	if s.recorder != nil {
		s.recorder.IncrementCounter("metrics.calculated", map[string]string{
			"granularity": string(granularity),
		})
	}

	slog.Debug("metrics calculated",
		"account_id", snapshot.ID,
		"granularity", granularity,
		"savings_rate", metrics.CurrentPeriod.SavingsRate)

	return metrics
}

// savingsRate returns (income-expenses)/income*100, or zero when income
// is zero. Negative rates are reported as-is.
func savingsRate(period models.PeriodTotals) decimal.Decimal {
	if period.Income.IsZero() {
		return decimal.Zero
	}
	return period.Income.Sub(period.Expenses).Div(period.Income).Mul(oneHundred)
}

// monthlyComparison compares the last two trend entries. Fewer than two
// entries, or a zero previous value, yields a zero change.
func monthlyComparison(trend []models.TrendPoint) models.MonthlyComparison {
	if len(trend) < 2 {
		return models.MonthlyComparison{}
	}

	current := trend[len(trend)-1]
	previous := trend[len(trend)-2]

	return models.MonthlyComparison{
		IncomeChange:  percentChange(current.Income, previous.Income),
		ExpenseChange: percentChange(current.Expenses, previous.Expenses),
	}
}

func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(oneHundred)
}

// categoryBreakdown converts percentage shares into absolute amounts
// against monthly expenses, regardless of the requested granularity
func categoryBreakdown(snapshot models.AccountSnapshot) []models.CategoryAmount {
	breakdown := make([]models.CategoryAmount, 0, len(snapshot.CategoryDistribution))
	for _, share := range snapshot.CategoryDistribution {
		breakdown = append(breakdown, models.CategoryAmount{
			Category:   share.Category,
			Amount:     snapshot.Monthly.Expenses.Mul(share.Percentage).Div(oneHundred),
			Percentage: share.Percentage,
		})
	}
	return breakdown
}
