package models

// AnomalyType identifies which detection rule produced a finding.
// The rule set is fixed; a new rule type requires a new case, not
// runtime registration.
type AnomalyType string

const (
	AnomalySpendingSpike     AnomalyType = "spending_spike"
	AnomalyCategoryThreshold AnomalyType = "category_threshold"
	AnomalyCreditUtilization AnomalyType = "credit_utilization"
)

// AllAnomalyTypes returns all valid anomaly type constants
func AllAnomalyTypes() []AnomalyType {
	return []AnomalyType{
		AnomalySpendingSpike,
		AnomalyCategoryThreshold,
		AnomalyCreditUtilization,
	}
}

// IsValidAnomalyType checks if an anomaly type string is valid
func IsValidAnomalyType(t AnomalyType) bool {
	for _, valid := range AllAnomalyTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Title returns the display title for the anomaly type
func (t AnomalyType) Title() string {
	switch t {
	case AnomalySpendingSpike:
		return "Spending Spike"
	case AnomalyCategoryThreshold:
		return "Category Threshold Exceeded"
	case AnomalyCreditUtilization:
		return "High Credit Utilization"
	default:
		return "Alert"
	}
}

// Severity ranks findings and insights for display
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Anomaly is a single rule finding. Anomalies are recomputed fresh on
// every evaluation and never persisted. Title carries the rule's display
// title so callers need no lookup of their own.
type Anomaly struct {
	Type     AnomalyType `json:"type"`
	Title    string      `json:"title"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}
