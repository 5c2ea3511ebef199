package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodMetrics holds the current-period figures for the requested granularity
type PeriodMetrics struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Balance     decimal.Decimal `json:"balance"`
	SavingsRate decimal.Decimal `json:"savings_rate"`
}

// MonthlyComparison holds month-over-month percentage changes computed
// from the last two trend entries. Both are zero when no previous month
// exists or the previous value is zero.
type MonthlyComparison struct {
	IncomeChange  decimal.Decimal `json:"income_change"`
	ExpenseChange decimal.Decimal `json:"expense_change"`
}

// CategoryAmount is one category's absolute spend derived from its
// percentage share of monthly expenses
type CategoryAmount struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Metrics is the full derived metric set for one snapshot and granularity
type Metrics struct {
	Granularity       Granularity       `json:"granularity"`
	CurrentPeriod     PeriodMetrics     `json:"current_period"`
	MonthlyComparison MonthlyComparison `json:"monthly_comparison"`
	CategoryBreakdown []CategoryAmount  `json:"category_breakdown"`
}

// Report is the period report assembled for display or export
type Report struct {
	Granularity         Granularity      `json:"granularity"`
	Income              decimal.Decimal  `json:"income"`
	Expenses            decimal.Decimal  `json:"expenses"`
	AverageDailyExpense decimal.Decimal  `json:"average_daily_expense"`
	CategoryBreakdown   []CategoryAmount `json:"category_breakdown"`
	GeneratedAt         time.Time        `json:"generated_at"`
}
