package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"findash/internal/dto"
	"findash/internal/models"
)

var (
	thirtyPercent = decimal.NewFromInt(30)
	fortyPercent  = decimal.NewFromInt(40)
)

// LocalScorer computes the financial health score in-process. The model
// is a weighted sum of four components: savings rate (0-30), expense
// management (0-30), category balance (0-20) and income trend (0-20).
type LocalScorer struct{}

// NewLocalScorer creates the in-process scoring backend
func NewLocalScorer() *LocalScorer {
	return &LocalScorer{}
}

// Score analyzes the snapshot and produces a 0-100 score with insights.
// The bearer token is ignored; local scoring needs no credentials.
func (s *LocalScorer) Score(_ context.Context, _ string, snapshot models.AccountSnapshot) (*dto.ScoringResponse, error) {
	income := snapshot.Monthly.Income.InexactFloat64()
	expenses := snapshot.Monthly.Expenses.InexactFloat64()

	// Savings rate component: a 20% rate earns full marks.
	savingsRate := 0.0
	if income > 0 {
		savingsRate = (income - expenses) / income * 100
	}
	savingsScore := math.Min(30, savingsRate/20*30)

	// Expense management component.
	expenseRatio := 1.0
	if income > 0 {
		expenseRatio = expenses / income
	}
	expenseScore := math.Max(0, 30*(1-expenseRatio))

	// Category balance component: each category above 40% costs 5 points.
	categoryScore := 20.0
	for _, cat := range snapshot.CategoryDistribution {
		if cat.Percentage.GreaterThan(fortyPercent) {
			categoryScore -= 5
		}
	}
	categoryScore = math.Max(0, categoryScore)

	// Income trend component: the latest month against the one before.
	trendScore := 10.0
	trend := snapshot.MonthlyTrend
	if len(trend) >= 2 {
		latest := trend[len(trend)-1].Income.InexactFloat64()
		previous := trend[len(trend)-2].Income.InexactFloat64()
		growth := 0.0
		if previous > 0 {
			growth = (latest - previous) / previous * 100
		}
		trendScore = math.Min(20, math.Max(0, 10+growth/10*10))
	}

	total := math.Round(savingsScore + expenseScore + categoryScore + trendScore)

	return &dto.ScoringResponse{
		Score:    total,
		Insights: s.buildInsights(snapshot, savingsRate, total),
	}, nil
}

func (s *LocalScorer) buildInsights(snapshot models.AccountSnapshot, savingsRate float64, total float64) []models.Insight {
	insights := []models.Insight{}

	if savingsRate < 20 {
		severity := models.SeverityMedium
		if savingsRate < 10 {
			severity = models.SeverityHigh
		}
		insights = append(insights, models.Insight{
			Type:           models.InsightSavings,
			Title:          "Improve Your Savings Rate",
			Description:    fmt.Sprintf("Your current savings rate is %.1f%%. Aim for at least 20%%.", savingsRate),
			Severity:       severity,
			Recommendation: "Consider automating your savings and reviewing non-essential expenses.",
		})
	}

	for _, cat := range snapshot.CategoryDistribution {
		if !cat.Percentage.GreaterThan(thirtyPercent) {
			continue
		}
		severity := models.SeverityMedium
		if cat.Percentage.GreaterThan(fortyPercent) {
			severity = models.SeverityHigh
		}
		insights = append(insights, models.Insight{
			Type:           models.InsightBudget,
			Title:          fmt.Sprintf("High Spending in %s", cat.Category),
			Description:    fmt.Sprintf("Spending in %s is %s%% of your budget.", cat.Category, cat.Percentage.String()),
			Severity:       severity,
			Recommendation: fmt.Sprintf("Try to reduce %s expenses to below 30%% of your budget.", cat.Category),
		})
	}

	// The health status insight is always present, even for a perfect score.
	status := "Needs Improvement"
	switch {
	case total >= 80:
		status = "Excellent"
	case total >= 60:
		status = "Good"
	case total >= 40:
		status = "Fair"
	}
	statusSeverity := models.SeverityHigh
	switch {
	case total >= 60:
		statusSeverity = models.SeverityLow
	case total >= 40:
		statusSeverity = models.SeverityMedium
	}
	insights = append(insights, models.Insight{
		Type:           models.InsightHealth,
		Title:          "Financial Health Status",
		Description:    fmt.Sprintf("Your financial health score is %d/100 - %s", int(total), status),
		Severity:       statusSeverity,
		Recommendation: "Focus on building emergency savings and maintaining a balanced budget.",
	})

	if trend := snapshot.MonthlyTrend; len(trend) >= 2 {
		latest := trend[len(trend)-1].Expenses.InexactFloat64()
		previous := trend[len(trend)-2].Expenses.InexactFloat64()
		change := 0.0
		if previous > 0 {
			change = (latest - previous) / previous * 100
		}
		if change > 10 {
			severity := models.SeverityMedium
			if change > 20 {
				severity = models.SeverityHigh
			}
			insights = append(insights, models.Insight{
				Type:           models.InsightBudget,
				Title:          "Spending Increase Alert",
				Description:    fmt.Sprintf("Your monthly expenses increased by %.1f%%", change),
				Severity:       severity,
				Recommendation: "Review your recent expenses and identify areas for reduction.",
			})
		}
	}

	return insights
}
