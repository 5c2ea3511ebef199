package services

import (
	"findash/internal/models"
)

// SelectPeriod picks the pre-aggregated totals matching the granularity.
// Unknown granularities resolve to monthly, mirroring ParseGranularity.
func SelectPeriod(snapshot models.AccountSnapshot, granularity models.Granularity) models.PeriodTotals {
	switch granularity {
	case models.GranularityDaily:
		return snapshot.Daily
	case models.GranularityWeekly:
		return snapshot.Weekly
	default:
		return snapshot.Monthly
	}
}
