package services

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"findash/internal/models"
)

var (
	spikeFactor      = decimal.NewFromFloat(1.2)
	creditLimitRatio = decimal.NewFromInt(3)
	utilizationFloor = decimal.NewFromInt(30)
)

// anomalyService runs the fixed three-rule anomaly pipeline: spending
// spike, category thresholds, credit utilization. Rules always run in
// that order and findings are never persisted.
type anomalyService struct {
	analyzer *CategoryAnalyzer
	recorder MetricsRecorderInterface
}

// NewAnomalyService creates the anomaly detection service
func NewAnomalyService(analyzer *CategoryAnalyzer, recorder MetricsRecorderInterface) AnomalyServiceInterface {
	return &anomalyService{analyzer: analyzer, recorder: recorder}
}

func (s *anomalyService) DetectAnomalies(snapshot models.AccountSnapshot) []models.Anomaly {
	anomalies := []models.Anomaly{}

	if a := s.detectSpendingSpike(snapshot); a != nil {
		anomalies = append(anomalies, *a)
	}
	anomalies = append(anomalies, s.detectCategoryBreaches(snapshot)...)
	if a := s.detectCreditUtilization(snapshot); a != nil {
		anomalies = append(anomalies, *a)
	}

	if s.recorder != nil {
		for _, a := range anomalies {
			s.recorder.IncrementCounter("anomaly.detected", map[string]string{
				"type":     string(a.Type),
				"severity": string(a.Severity),
			})
		}
	}

	slog.Debug("anomaly detection completed",
		"account_id", snapshot.ID,
		"findings", len(anomalies))

	return anomalies
}

// detectSpendingSpike compares monthly expenses against 120% of the
// trend average. An empty trend skips the check entirely.
func (s *anomalyService) detectSpendingSpike(snapshot models.AccountSnapshot) *models.Anomaly {
	trend := snapshot.MonthlyTrend
	if len(trend) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, point := range trend {
		sum = sum.Add(point.Expenses)
	}
	average := sum.Div(decimal.NewFromInt(int64(len(trend))))

	expenses := snapshot.Monthly.Expenses
	if !expenses.GreaterThan(average.Mul(spikeFactor)) {
		return nil
	}

	return &models.Anomaly{
		Type:     models.AnomalySpendingSpike,
		Title:    models.AnomalySpendingSpike.Title(),
		Severity: models.SeverityHigh,
		Message: fmt.Sprintf("Monthly expenses (%s) are 20%% above average (%s)",
			formatCurrency(expenses), formatCurrency(average)),
	}
}

// detectCategoryBreaches emits a medium finding per category whose share
// strictly exceeds its ceiling, in distribution order
func (s *anomalyService) detectCategoryBreaches(snapshot models.AccountSnapshot) []models.Anomaly {
	var anomalies []models.Anomaly
	for _, share := range s.analyzer.Exceeding(snapshot.CategoryDistribution) {
		anomalies = append(anomalies, models.Anomaly{
			Type:     models.AnomalyCategoryThreshold,
			Title:    models.AnomalyCategoryThreshold.Title(),
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf("%s spending (%s%%) exceeds threshold of %d%%",
				share.Category, share.Percentage.String(), s.analyzer.Ceiling(share.Category)),
		})
	}
	return anomalies
}

// detectCreditUtilization treats a negative monthly balance as revolving
// credit with an assumed limit of three times the outstanding amount.
// With that assumption utilization is always one third, so the finding
// fires for every account with a negative balance.
func (s *anomalyService) detectCreditUtilization(snapshot models.AccountSnapshot) *models.Anomaly {
	if !snapshot.IsCreditStyle() {
		return nil
	}

	outstanding := snapshot.Monthly.Balance.Abs()
	creditLimit := outstanding.Mul(creditLimitRatio)
	utilization := outstanding.Div(creditLimit).Mul(oneHundred)
	if !utilization.GreaterThan(utilizationFloor) {
		return nil
	}

	return &models.Anomaly{
		Type:     models.AnomalyCreditUtilization,
		Title:    models.AnomalyCreditUtilization.Title(),
		Severity: models.SeverityHigh,
		Message: fmt.Sprintf("Credit utilization is at %s%%, recommended to keep below 30%%",
			utilization.StringFixed(1)),
	}
}

// formatCurrency renders an INR amount for display messages
func formatCurrency(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}
