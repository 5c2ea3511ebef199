package models

import (
	"github.com/shopspring/decimal"
)

// Granularity selects which pre-aggregated totals of a snapshot to use
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// AllGranularities returns all valid granularity constants
func AllGranularities() []Granularity {
	return []Granularity{GranularityDaily, GranularityWeekly, GranularityMonthly}
}

// ParseGranularity maps a raw string to a granularity. Unknown or empty
// values fall back to monthly; this is a total function, no error is raised.
func ParseGranularity(raw string) Granularity {
	switch Granularity(raw) {
	case GranularityDaily:
		return GranularityDaily
	case GranularityWeekly:
		return GranularityWeekly
	case GranularityMonthly:
		return GranularityMonthly
	default:
		return GranularityMonthly
	}
}

// PeriodTotals holds the pre-aggregated figures for one granularity.
// Balance may be negative for credit-style accounts.
type PeriodTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// TrendPoint is one month of the chronological income/expense trend,
// oldest first. The last two entries are compared as current vs previous.
type TrendPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryShare is one category's slice of the spending distribution.
// Percentages are independently supplied and are not guaranteed to sum
// to 100 across a snapshot; no cross-category invariant is enforced.
type CategoryShare struct {
	Category   string          `json:"category"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// AccountSnapshot is the immutable per-account data bundle that feeds
// every analytics function. It is owned by the caller and read-only here.
type AccountSnapshot struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Color                string          `json:"color"`
	Daily                PeriodTotals    `json:"daily"`
	Weekly               PeriodTotals    `json:"weekly"`
	Monthly              PeriodTotals    `json:"monthly"`
	MonthlyTrend         []TrendPoint    `json:"monthly_trend"`
	CategoryDistribution []CategoryShare `json:"category_distribution"`
	TotalBalance         decimal.Decimal `json:"total_balance"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses      decimal.Decimal `json:"monthly_expenses"`
}

// IsCreditStyle reports whether the snapshot looks like a credit-card
// account: a negative monthly balance indicates revolving credit usage.
func (s AccountSnapshot) IsCreditStyle() bool {
	return s.Monthly.Balance.IsNegative()
}
