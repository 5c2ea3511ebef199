package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"findash/internal/models"
)

// insightService produces the scored health report. Scoring is delegated
// to a backend behind a circuit breaker; any failure degrades to a
// single fallback insight with the last-known score, never a hard error.
type insightService struct {
	client   ScoringClientInterface
	breaker  CircuitBreakerInterface
	recorder MetricsRecorderInterface
	timeout  time.Duration

	mu        sync.RWMutex
	lastScore int
}

// NewInsightService creates the insight service. The timeout caps each
// scoring call independently of the caller's context.
func NewInsightService(
	client ScoringClientInterface,
	breaker CircuitBreakerInterface,
	recorder MetricsRecorderInterface,
	timeout time.Duration,
) InsightServiceInterface {
	return &insightService{
		client:   client,
		breaker:  breaker,
		recorder: recorder,
		timeout:  timeout,
	}
}

func (s *insightService) GetInsights(ctx context.Context, token string, snapshot models.AccountSnapshot) *models.HealthReport {
	if s.breaker != nil && s.breaker.IsOpen() {
		slog.Warn("scoring skipped",
			"account_id", snapshot.ID,
			"error", ErrCircuitBreakerOpen)
		s.recordOutcome("short_circuited")
		return s.fallbackReport()
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.client.Score(callCtx, token, snapshot)
	if s.recorder != nil {
		s.recorder.RecordProcessingTime("scoring.request", time.Since(start))
	}

	if err != nil {
		slog.Error("scoring request failed", "account_id", snapshot.ID, "error", err)
		s.recordFailure("error")
		return s.fallbackReport()
	}
	if malformed(result.Score, result.Insights) {
		slog.Error("scoring response malformed",
			"account_id", snapshot.ID,
			"score", result.Score)
		s.recordFailure("malformed")
		return s.fallbackReport()
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	s.recordOutcome("success")

	score := int(result.Score)
	s.mu.Lock()
	s.lastScore = score
	s.mu.Unlock()

	if s.recorder != nil {
		s.recorder.RecordGauge("health.score", float64(score), nil)
	}

	return &models.HealthReport{
		HealthScore: score,
		Insights:    result.Insights,
		GeneratedAt: time.Now().UTC(),
	}
}

// malformed rejects responses the fallback contract treats as unusable:
// a score outside 0-100 or a missing insight list
func malformed(score float64, insights []models.Insight) bool {
	return score < 0 || score > 100 || insights == nil
}

// fallbackReport carries the last successfully computed score, initially
// zero, with exactly one synthetic insight
func (s *insightService) fallbackReport() *models.HealthReport {
	s.mu.RLock()
	lastScore := s.lastScore
	s.mu.RUnlock()

	return &models.HealthReport{
		HealthScore: lastScore,
		Insights: []models.Insight{
			{
				Type:        models.InsightHealth,
				Title:       "Unable to Generate Insights",
				Description: "Please try again later",
				Severity:    models.SeverityMedium,
			},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func (s *insightService) recordFailure(outcome string) {
	if s.breaker != nil {
		s.breaker.RecordFailure()
		if s.recorder != nil {
			s.recorder.RecordGauge("circuit_breaker.state", float64(s.breaker.GetState()), nil)
		}
	}
	s.recordOutcome(outcome)
}

func (s *insightService) recordOutcome(outcome string) {
	if s.recorder != nil {
		s.recorder.IncrementCounter("scoring.request", map[string]string{
			"outcome": outcome,
		})
	}
}
