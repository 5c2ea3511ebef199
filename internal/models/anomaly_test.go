package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnomalyTypeTitle(t *testing.T) {
	assert.Equal(t, "Spending Spike", AnomalySpendingSpike.Title())
	assert.Equal(t, "Category Threshold Exceeded", AnomalyCategoryThreshold.Title())
	assert.Equal(t, "High Credit Utilization", AnomalyCreditUtilization.Title())
	assert.Equal(t, "Alert", AnomalyType("unknown").Title())
}

func TestIsValidAnomalyType(t *testing.T) {
	for _, anomalyType := range AllAnomalyTypes() {
		assert.True(t, IsValidAnomalyType(anomalyType))
	}
	assert.False(t, IsValidAnomalyType(AnomalyType("spending-spike")))
}
