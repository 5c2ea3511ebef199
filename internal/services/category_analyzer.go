package services

import (
	"github.com/shopspring/decimal"

	"findash/internal/models"
)

// CategoryAnalyzer evaluates category concentration against the
// configured ceiling table. Categories missing from the table use the
// default ceiling.
type CategoryAnalyzer struct {
	thresholds models.CategoryThresholdTable
}

// NewCategoryAnalyzer creates an analyzer over a threshold table
func NewCategoryAnalyzer(thresholds models.CategoryThresholdTable) *CategoryAnalyzer {
	if thresholds == nil {
		thresholds = models.CategoryThresholdTable{}
	}
	return &CategoryAnalyzer{thresholds: thresholds}
}

// Ceiling returns the concentration ceiling for a category
func (a *CategoryAnalyzer) Ceiling(category string) int {
	return a.thresholds.Ceiling(category)
}

// OverThreshold reports whether a category's share strictly exceeds its
// ceiling. A share exactly at the ceiling is compliant.
func (a *CategoryAnalyzer) OverThreshold(share models.CategoryShare) bool {
	ceiling := decimal.NewFromInt(int64(a.Ceiling(share.Category)))
	return share.Percentage.GreaterThan(ceiling)
}

// Exceeding returns the shares over their ceilings, preserving the
// distribution order
func (a *CategoryAnalyzer) Exceeding(distribution []models.CategoryShare) []models.CategoryShare {
	var out []models.CategoryShare
	for _, share := range distribution {
		if a.OverThreshold(share) {
			out = append(out, share)
		}
	}
	return out
}
