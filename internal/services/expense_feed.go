package services

import (
	"sync"

	"github.com/shopspring/decimal"
)

// LatestExpenseFeed holds the most recent effective expense figure per
// account, pushed by the savings service and read by the dashboard.
// Accounts with no published value fall back to their raw period
// expenses at read time.
type LatestExpenseFeed struct {
	mu     sync.RWMutex
	latest map[string]decimal.Decimal
}

// NewLatestExpenseFeed creates an empty expense feed
func NewLatestExpenseFeed() *LatestExpenseFeed {
	return &LatestExpenseFeed{
		latest: make(map[string]decimal.Decimal),
	}
}

// OnExpenseUpdate stores the newest effective expense figure for an account
func (f *LatestExpenseFeed) OnExpenseUpdate(accountID string, effectiveExpenses decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest[accountID] = effectiveExpenses
}

// Latest returns the last published figure for an account, if any
func (f *LatestExpenseFeed) Latest(accountID string) (decimal.Decimal, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.latest[accountID]
	return value, ok
}

// LatestOr returns the last published figure, or the fallback when the
// account has never been published
func (f *LatestExpenseFeed) LatestOr(accountID string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := f.Latest(accountID); ok {
		return value
	}
	return fallback
}
